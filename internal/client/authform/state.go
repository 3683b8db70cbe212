// Package authform implements the sign-in / sign-up form: its two-mode
// state, client-side validation and submission through the gateway.
package authform

// Mode is the form variant. Name fields exist only in SignUp.
type Mode int

const (
	SignIn Mode = iota
	SignUp
)

func (m Mode) String() string {
	if m == SignUp {
		return "sign-up"
	}
	return "sign-in"
}

// Names are the sign-up only fields.
type Names struct {
	First string
	Last  string
}

// State is a snapshot of the form. Names is nil in SignIn mode.
type State struct {
	Mode         Mode
	Email        string
	Password     string
	Names        *Names
	Error        string
	ShowPassword bool
	Submitting   bool
}

func (s State) clone() State {
	if s.Names != nil {
		n := *s.Names
		s.Names = &n
	}
	return s
}
