package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_UnmarshalJSON_KeepsUnknownFields(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"_id":"42","firstName":"Ada","lastName":"Lovelace","emailId":"ada@example.com","age":36,"skills":["math"]}`), &u)
	require.NoError(t, err)

	assert.Equal(t, "42", u.ID)
	assert.Equal(t, "Ada", u.FirstName)
	assert.Equal(t, "Lovelace", u.LastName)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Equal(t, float64(36), u.Extra["age"])
	assert.NotContains(t, u.Extra, "firstName")
}

func TestUser_UnmarshalJSON_Partial(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"firstName":"A"}`), &u))
	assert.Equal(t, User{FirstName: "A"}, u)
}

func TestUser_UnmarshalJSON_NotAnObject(t *testing.T) {
	var u User
	require.Error(t, json.Unmarshal([]byte(`"nope"`), &u))
}

func TestUser_MarshalJSON_RoundTripsExtra(t *testing.T) {
	in := User{ID: "1", FirstName: "A", LastName: "B", Email: "a@b.com", Extra: map[string]any{"about": "hi"}}
	b, err := json.Marshal(in)
	require.NoError(t, err)

	var out User
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestUser_Clone_DoesNotShareExtra(t *testing.T) {
	u := User{FirstName: "A", Extra: map[string]any{"k": "v"}}
	c := u.Clone()
	c.Extra["k"] = "changed"

	assert.Equal(t, "v", u.Extra["k"])
}

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "A B", User{FirstName: "A", LastName: "B"}.FullName())
	assert.Equal(t, "A", User{FirstName: "A"}.FullName())
	assert.Equal(t, "B", User{LastName: "B"}.FullName())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "unknown", PhaseUnknown.String())
	assert.Equal(t, "absent", PhaseAbsent.String())
	assert.Equal(t, "present", PhasePresent.String())
}

func TestSession_Present(t *testing.T) {
	assert.False(t, Session{}.Present())
	assert.False(t, Session{Phase: PhasePresent}.Present())
	assert.True(t, Session{Phase: PhasePresent, User: &User{}}.Present())
}
