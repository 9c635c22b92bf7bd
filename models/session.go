package models

// Session states. Authenticated and ResetPending are mutually exclusive;
// a session record is absent entirely for anonymous clients.
const (
	StateAuthenticated = "authenticated"
	StateResetPending  = "reset_pending"
)

type Session struct {
	ID       string `json:"id"`
	State    string `json:"state"`
	UserID   string `json:"userid,omitempty"`
	Username string `json:"username"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.State == StateAuthenticated
}

func (s *Session) ResetPendingFor(username string) bool {
	return s != nil && s.State == StateResetPending && s.Username == username
}
