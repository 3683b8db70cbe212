// Package models defines the client-side data carried between the gateway,
// the session store and the views.
package models

import (
	"encoding/json"
	"maps"
)

// User is the profile returned by the backend. Fields the client does not
// model explicitly are kept in Extra so they survive a round trip.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Extra     map[string]any
}

var knownUserFields = []string{"_id", "firstName", "lastName", "emailId"}

func (u *User) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*u = User{
		ID:        stringField(raw, "_id"),
		FirstName: stringField(raw, "firstName"),
		LastName:  stringField(raw, "lastName"),
		Email:     stringField(raw, "emailId"),
	}
	for _, k := range knownUserFields {
		delete(raw, k)
	}
	if len(raw) > 0 {
		u.Extra = raw
	}
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Extra)+len(knownUserFields))
	maps.Copy(out, u.Extra)
	if u.ID != "" {
		out["_id"] = u.ID
	}
	out["firstName"] = u.FirstName
	out["lastName"] = u.LastName
	out["emailId"] = u.Email
	return json.Marshal(out)
}

// Clone returns a copy that shares no mutable state with u.
func (u User) Clone() User {
	c := u
	if u.Extra != nil {
		c.Extra = maps.Clone(u.Extra)
	}
	return c
}

// FullName is "First Last", trimmed when either part is missing.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

func stringField(raw map[string]any, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}
