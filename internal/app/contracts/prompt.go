package contracts

import (
	"context"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
)

type PromptUsecase interface {
	GetPrompt(ctx context.Context, request *requests.GetPrompt) (*responses.Prompt, error)
	GetCustomPrompt(ctx context.Context, request *requests.CustomPrompt) (*responses.Prompt, error)
}

type PromptGenerator interface {
	Enabled() bool
	Generate(ctx context.Context, instruction string) (string, error)
}
