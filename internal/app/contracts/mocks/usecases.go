package mocks

import (
	"context"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct{ mock.Mock }

func (m *AuthUsecase) IssueCSRFToken(ctx context.Context) (*responses.CSRFToken, error) {
	args := m.Called(ctx)
	token, _ := args.Get(0).(*responses.CSRFToken)
	return token, args.Error(1)
}

func (m *AuthUsecase) Signup(ctx context.Context, request *requests.Signup) (*responses.AuthResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AuthResult)
	return result, args.Error(1)
}

func (m *AuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.AuthResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AuthResult)
	return result, args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, request *requests.Logout) error {
	return m.Called(ctx, request).Error(0)
}

func (m *AuthUsecase) Refresh(ctx context.Context, request *requests.RefreshToken) (*responses.AuthResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.AuthResult)
	return result, args.Error(1)
}

func (m *AuthUsecase) Authenticate(ctx context.Context, accessToken string) (*models.Session, error) {
	args := m.Called(ctx, accessToken)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *AuthUsecase) IsAnonymousCSRFTokenValid(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}

func (m *AuthUsecase) StartSession(ctx context.Context, user *models.User) (*responses.AuthResult, error) {
	args := m.Called(ctx, user)
	result, _ := args.Get(0).(*responses.AuthResult)
	return result, args.Error(1)
}

type UserUsecase struct{ mock.Mock }

func (m *UserUsecase) GetProfile(ctx context.Context, userID int64) (*responses.UserProfile, error) {
	args := m.Called(ctx, userID)
	profile, _ := args.Get(0).(*responses.UserProfile)
	return profile, args.Error(1)
}

func (m *UserUsecase) GetStats(ctx context.Context, userID int64) (*responses.UserStats, error) {
	args := m.Called(ctx, userID)
	stats, _ := args.Get(0).(*responses.UserStats)
	return stats, args.Error(1)
}

func (m *UserUsecase) DeleteUser(ctx context.Context, request *requests.DeleteUser) error {
	return m.Called(ctx, request).Error(0)
}

func (m *UserUsecase) ExportUser(ctx context.Context, request *requests.ExportUser) (*responses.UserExport, error) {
	args := m.Called(ctx, request)
	export, _ := args.Get(0).(*responses.UserExport)
	return export, args.Error(1)
}

type JournalUsecase struct{ mock.Mock }

func (m *JournalUsecase) CreateJournal(ctx context.Context, request *requests.CreateJournal) (*responses.Journal, error) {
	args := m.Called(ctx, request)
	journal, _ := args.Get(0).(*responses.Journal)
	return journal, args.Error(1)
}

func (m *JournalUsecase) UpdateJournal(ctx context.Context, request *requests.UpdateJournal) (*responses.Journal, error) {
	args := m.Called(ctx, request)
	journal, _ := args.Get(0).(*responses.Journal)
	return journal, args.Error(1)
}

func (m *JournalUsecase) FindJournalByID(ctx context.Context, request *requests.FindJournalByID) (*responses.Journal, error) {
	args := m.Called(ctx, request)
	journal, _ := args.Get(0).(*responses.Journal)
	return journal, args.Error(1)
}

func (m *JournalUsecase) FindJournals(ctx context.Context, userID int64) ([]responses.Journal, error) {
	args := m.Called(ctx, userID)
	journals, _ := args.Get(0).([]responses.Journal)
	return journals, args.Error(1)
}

func (m *JournalUsecase) FindJournalEntries(ctx context.Context, request *requests.FindJournalEntries) ([]responses.Entry, error) {
	args := m.Called(ctx, request)
	entries, _ := args.Get(0).([]responses.Entry)
	return entries, args.Error(1)
}

func (m *JournalUsecase) DeleteJournalByID(ctx context.Context, request *requests.DeleteJournalByID) error {
	return m.Called(ctx, request).Error(0)
}

type EntryUsecase struct{ mock.Mock }

func (m *EntryUsecase) CreateEntry(ctx context.Context, request *requests.CreateEntry) (*responses.Entry, error) {
	args := m.Called(ctx, request)
	entry, _ := args.Get(0).(*responses.Entry)
	return entry, args.Error(1)
}

func (m *EntryUsecase) UpdateEntry(ctx context.Context, request *requests.UpdateEntry) (*responses.Entry, error) {
	args := m.Called(ctx, request)
	entry, _ := args.Get(0).(*responses.Entry)
	return entry, args.Error(1)
}

func (m *EntryUsecase) FindEntryByID(ctx context.Context, request *requests.FindEntryByID) (*responses.Entry, error) {
	args := m.Called(ctx, request)
	entry, _ := args.Get(0).(*responses.Entry)
	return entry, args.Error(1)
}

func (m *EntryUsecase) FindEntries(ctx context.Context, request *requests.FindEntries) ([]responses.Entry, error) {
	args := m.Called(ctx, request)
	entries, _ := args.Get(0).([]responses.Entry)
	return entries, args.Error(1)
}

func (m *EntryUsecase) DeleteEntryByID(ctx context.Context, request *requests.DeleteEntryByID) error {
	return m.Called(ctx, request).Error(0)
}

type InsightUsecase struct{ mock.Mock }

func (m *InsightUsecase) GetHeatmap(ctx context.Context, request *requests.Heatmap) ([]responses.HeatmapDay, error) {
	args := m.Called(ctx, request)
	days, _ := args.Get(0).([]responses.HeatmapDay)
	return days, args.Error(1)
}

func (m *InsightUsecase) GetMoodTrend(ctx context.Context, request *requests.MoodTrend) ([]responses.MoodTrendPoint, error) {
	args := m.Called(ctx, request)
	points, _ := args.Get(0).([]responses.MoodTrendPoint)
	return points, args.Error(1)
}

type MoodUsecase struct{ mock.Mock }

func (m *MoodUsecase) FindAll(ctx context.Context) ([]responses.Mood, error) {
	args := m.Called(ctx)
	moods, _ := args.Get(0).([]responses.Mood)
	return moods, args.Error(1)
}

func (m *MoodUsecase) SeedMoodsIfEmpty(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type OAuthUsecase struct{ mock.Mock }

func (m *OAuthUsecase) BeginGoogleLogin(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *OAuthUsecase) CompleteGoogleLogin(ctx context.Context, state, code string) (*responses.AuthResult, error) {
	args := m.Called(ctx, state, code)
	result, _ := args.Get(0).(*responses.AuthResult)
	return result, args.Error(1)
}

type PromptUsecase struct{ mock.Mock }

func (m *PromptUsecase) GetPrompt(ctx context.Context, request *requests.GetPrompt) (*responses.Prompt, error) {
	args := m.Called(ctx, request)
	prompt, _ := args.Get(0).(*responses.Prompt)
	return prompt, args.Error(1)
}

func (m *PromptUsecase) GetCustomPrompt(ctx context.Context, request *requests.CustomPrompt) (*responses.Prompt, error) {
	args := m.Called(ctx, request)
	prompt, _ := args.Get(0).(*responses.Prompt)
	return prompt, args.Error(1)
}
