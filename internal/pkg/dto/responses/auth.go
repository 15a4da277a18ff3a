package responses

import "moodjournal-service/internal/app/models"

type AuthUser struct {
	User UserProfile `json:"user"`
}

type CSRFToken struct {
	CSRFToken string `json:"csrf_token"`
}

// AuthResult carries what the controller needs to set cookies. Only User
// is serialized.
type AuthResult struct {
	User      UserProfile
	Session   *models.Session
	TokenPair *models.TokenPair
}
