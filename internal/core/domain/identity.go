package domain

import "time"

// Identity is the signed-in actor.
type Identity struct {
	ID              string            `json:"id"`
	GeneratedID     string            `json:"generatedId"`
	EmailOrUsername string            `json:"emailOrUsername"`
	DisplayName     string            `json:"displayName"`
	Attributes      map[string]string `json:"attributes,omitempty"`
}

// PendingRegistration is staged between begin and confirm registration.
type PendingRegistration struct {
	EmailOrUsername string    `json:"emailOrUsername"`
	SecretHash      string    `json:"secretHash"` // argon2id
	DisplayName     string    `json:"displayName"`
	RegisteredAt    time.Time `json:"registeredAt"`
}

// Delivery describes where a confirmation code was (pretend) sent.
type Delivery struct {
	Medium      string `json:"medium"`
	Destination string `json:"destination"`
}

// SessionState is the persisted session document.
type SessionState struct {
	Identity        *Identity `json:"identity"`
	IsAuthenticated bool      `json:"isAuthenticated"`
}
