package models

// Phase is the resolution state of the visitor's authentication.
type Phase int

const (
	// PhaseUnknown: the initial profile fetch has not resolved yet.
	PhaseUnknown Phase = iota
	// PhaseAbsent: resolved, not authenticated.
	PhaseAbsent
	// PhasePresent: resolved, authenticated.
	PhasePresent
)

func (p Phase) String() string {
	switch p {
	case PhaseAbsent:
		return "absent"
	case PhasePresent:
		return "present"
	default:
		return "unknown"
	}
}

// Session is a snapshot of the session store. User is nil unless Phase is
// PhasePresent.
type Session struct {
	Phase Phase
	User  *User
}

func (s Session) Present() bool {
	return s.Phase == PhasePresent && s.User != nil
}
