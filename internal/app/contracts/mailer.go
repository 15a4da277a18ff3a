package contracts

import (
	"context"
	"moodjournal-service/internal/app/models"
)

type MailerService interface {
	SendEmail(ctx context.Context, payload *models.EmailPayload) error
}
