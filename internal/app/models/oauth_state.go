package models

import "time"

type OAuthState struct {
	ID        int64
	State     string
	CreatedAt time.Time
	ExpiresAt time.Time
	Used      bool
}

// GoogleUserInfo is the subset of the OpenID userinfo payload the service reads.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}
