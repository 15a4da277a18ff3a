package responses

const (
	PromptSourceAI       = "ai"
	PromptSourceFallback = "fallback"
)

type Prompt struct {
	Prompt        string `json:"prompt"`
	Source        string `json:"source"`
	QuotaExceeded bool   `json:"quota_exceeded,omitempty"`
}
