package requests

type GetPrompt struct {
	UserID int64 `json:"-"`
}

type CustomPrompt struct {
	UserID int64  `json:"-"`
	Topic  string `json:"topic" validate:"required,min=1,max=100"`
}
