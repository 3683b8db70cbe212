package authform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func blocking(issues []Issue) []Issue {
	var out []Issue
	for _, is := range issues {
		if is.Blocking {
			out = append(out, is)
		}
	}
	return out
}

func TestValidate_SignIn(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		fields   []string
	}{
		{name: "valid", email: "a@b.com", password: "Passw0rd1"},
		{name: "weak but long enough", email: "a@b.com", password: "password"},
		{name: "empty email", email: "", password: "Passw0rd1", fields: []string{"Email"}},
		{name: "bad email", email: "a@", password: "Passw0rd1", fields: []string{"Email"}},
		{name: "short password", email: "a@b.com", password: "Pw1", fields: []string{"Password"}},
		{name: "both", email: "", password: "", fields: []string{"Email", "Password"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := validateState(State{Mode: SignIn, Email: tt.email, Password: tt.password})
			var fields []string
			for _, is := range blocking(issues) {
				fields = append(fields, is.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestValidate_SignUpNameLength(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		last   string
		fields []string
	}{
		{name: "ok", first: "Ann", last: "Bee"},
		{name: "too short", first: "Al", last: "Bee", fields: []string{"FirstName"}},
		{name: "too long", first: "Ann", last: "Abcdefghijabcdefghijabcdefghijx", fields: []string{"LastName"}},
		{name: "multibyte counts runes", first: "Ümit", last: "Çelik"},
		{name: "missing", fields: []string{"FirstName", "LastName"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := State{Mode: SignUp, Email: "a@b.com", Password: "Passw0rd1", Names: &Names{First: tt.first, Last: tt.last}}
			var fields []string
			for _, is := range blocking(validateState(st)) {
				fields = append(fields, is.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestValidate_SignUpPasswordPatternIsAdvisory(t *testing.T) {
	st := State{Mode: SignUp, Email: "a@b.com", Password: "alllowercase", Names: &Names{First: "Ann", Last: "Bee"}}
	issues := validateState(st)
	if assert.Len(t, issues, 1) {
		assert.Equal(t, "Password", issues[0].Field)
		assert.False(t, issues[0].Blocking)
	}

	st.Password = "Passw0rd1"
	assert.Empty(t, validateState(st))
}

func TestIssueMessages(t *testing.T) {
	issues := validateState(State{Mode: SignUp, Names: &Names{First: "Al"}, Password: "x"})
	msgs := map[string]string{}
	for _, is := range issues {
		msgs[is.Field] = is.Message
	}
	assert.Equal(t, "First name must be between 3 and 30 characters", msgs["FirstName"])
	assert.Equal(t, "Last name is required", msgs["LastName"])
	assert.Equal(t, "Email is required", msgs["Email"])
	assert.Equal(t, "Password must be at least 8 characters", msgs["Password"])
}
