package models

import "time"

// Session is the host-shell context extracted from the JWT: who is acting
// and which mortuary location their session is scoped to.
type Session struct {
	SessionID    string
	UserID       string
	ProviderUUID string
	LocationUUID string
	Roles        []string
	ExpiresAt    time.Time
}
