package models

// Session is the client-persisted authenticated identity: one bearer token
// and the holder's display fields. There is no refresh mechanism; expiry
// forces a full re-authentication.
type Session struct {
	AccessToken string   `json:"access_token"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Roles       []string `json:"roles,omitempty"`
}
