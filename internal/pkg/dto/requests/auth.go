package requests

type Signup struct {
	Username string `json:"username" validate:"required,min=3,max=20,username,clean_name"`
	Email    string `json:"email" validate:"required,email_format"`
	Password string `json:"password" validate:"required,password"`
}

type Login struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Logout struct {
	SessionID string
	UserID    int64
	// RefreshToken is optional; when present its jti is revoked too.
	RefreshToken string
}

type RefreshToken struct {
	RefreshToken string
}
