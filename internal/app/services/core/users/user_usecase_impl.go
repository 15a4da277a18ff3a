package users

import (
	"context"
	"fmt"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
	"moodjournal-service/internal/pkg/exceptions"
	"moodjournal-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type userUsecase struct {
	UserRepository    contracts.UserRepository
	JournalRepository contracts.JournalRepository
	EntryRepository   contracts.EntryRepository
	SessionService    contracts.SessionService
	MailerService     contracts.MailerService
	Storage           contracts.Storage
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	journalRepository contracts.JournalRepository,
	entryRepository contracts.EntryRepository,
	sessionService contracts.SessionService,
	mailerService contracts.MailerService,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository:    userRepository,
			JournalRepository: journalRepository,
			EntryRepository:   entryRepository,
			SessionService:    sessionService,
			MailerService:     mailerService,
			Storage:           storage,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) GetProfile(ctx context.Context, userID int64) (*responses.UserProfile, error) {
	user, err := uc.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := utils.MapUserToProfileResponse(user)
	return &profile, nil
}

// GetStats runs the three aggregate queries concurrently.
func (uc *userUsecase) GetStats(ctx context.Context, userID int64) (*responses.UserStats, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetStats called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	var (
		stats      responses.UserStats
		entryTimes []time.Time
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := uc.JournalRepository.CountByUserID(gctx, userID)
		stats.JournalCount = count
		return err
	})
	g.Go(func() error {
		count, err := uc.EntryRepository.CountByUserID(gctx, userID)
		stats.EntryCount = count
		return err
	})
	g.Go(func() error {
		times, err := uc.EntryRepository.FindEntryTimesByUserID(gctx, userID, nil, nil)
		entryTimes = times
		return err
	})
	if err := g.Wait(); err != nil {
		uc.Log.Error("userUsecase.GetStats error collecting stats",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	stats.LongestStreak, stats.CurrentStreak = utils.CalculateStreaks(entryTimes, time.Now(), uc.InternalConfig.Location())

	uc.Log.Info("userUsecase.GetStats succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)
	return &stats, nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, request *requests.DeleteUser) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.DeleteUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, request.UserID),
	)

	user, err := uc.findUser(ctx, request.UserID)
	if err != nil {
		return err
	}

	if err := uc.UserRepository.DeleteByID(ctx, user.ID); err != nil {
		return err
	}

	if _, err := uc.SessionService.DeleteUserSessions(ctx, user.ID); err != nil {
		uc.Log.Error("userUsecase.DeleteUser error revoking sessions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	if uc.MailerService != nil {
		err := uc.MailerService.SendEmail(ctx, &models.EmailPayload{
			To:      user.Email,
			Subject: constvars.EmailSubjectAccountDeleted,
			Body:    fmt.Sprintf(constvars.EmailBodyDeletedFormat, user.Username),
		})
		if err != nil {
			uc.Log.Warn("userUsecase.DeleteUser error sending email, continuing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("userUsecase.DeleteUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (uc *userUsecase) ExportUser(ctx context.Context, request *requests.ExportUser) (*responses.UserExport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.ExportUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, request.UserID),
	)

	user, err := uc.findUser(ctx, request.UserID)
	if err != nil {
		return nil, err
	}

	journals, err := uc.JournalRepository.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	entries, err := uc.EntryRepository.FindByFilter(ctx, &models.EntryFilter{UserID: user.ID})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	document := responses.UserExportDocument{
		ExportedAt: now,
		Profile:    utils.MapUserToProfileResponse(user),
		Journals:   utils.MapJournalsToResponse(journals),
		Entries:    utils.MapEntriesToResponse(entries),
	}
	data, err := json.Marshal(document)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	bucket := uc.InternalConfig.Export.BucketName
	objectName := utils.GenerateExportObjectName(user.ID, now)
	if _, err := uc.Storage.UploadObject(ctx, bucket, objectName, data, constvars.MIMEApplicationJSON); err != nil {
		uc.Log.Error("userUsecase.ExportUser error uploading export",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketKey, bucket),
			zap.Error(err),
		)
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Export.URLExpiryInMinutes) * time.Minute
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucket, objectName, expiry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.ExportUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectName),
	)
	return &responses.UserExport{
		URL:       url,
		Object:    objectName,
		ExpiresAt: now.Add(expiry),
	}, nil
}

func (uc *userUsecase) findUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user, nil
}
