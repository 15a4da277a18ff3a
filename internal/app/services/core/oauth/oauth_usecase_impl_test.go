package oauth

import (
	"context"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts/mocks"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/dto/responses"
	"moodjournal-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type oauthFixture struct {
	states   *mocks.OAuthStateRepository
	provider *mocks.OAuthProvider
	users    *mocks.UserRepository
	auth     *fakeAuthUsecase
	usecase  *oauthUsecase
}

func newOAuthFixture() *oauthFixture {
	f := &oauthFixture{
		states:   new(mocks.OAuthStateRepository),
		provider: new(mocks.OAuthProvider),
		users:    new(mocks.UserRepository),
		auth:     new(fakeAuthUsecase),
	}
	f.usecase = &oauthUsecase{
		StateRepository: f.states,
		Provider:        f.provider,
		UserRepository:  f.users,
		AuthUsecase:     f.auth,
		InternalConfig:  &config.InternalConfig{OAuth: config.AppOAuth{StateTTLInMinutes: 10}},
		Log:             zap.NewNop(),
	}
	return f
}

func TestBeginGoogleLogin(t *testing.T) {
	f := newOAuthFixture()
	f.states.On("DeleteExpired", mock.Anything, mock.Anything).Return(int64(2), nil).Once()

	var storedState string
	f.states.On("CreateState", mock.Anything, mock.AnythingOfType("string"), mock.MatchedBy(func(expiresAt time.Time) bool {
		return time.Until(expiresAt) > 9*time.Minute
	})).Run(func(args mock.Arguments) { storedState = args.String(1) }).Return(nil).Once()
	f.provider.On("AuthCodeURL", mock.Anything).Return("https://accounts.google.com/o/oauth2/auth?state=x").Once()

	url, err := f.usecase.BeginGoogleLogin(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://accounts.google.com"))
	assert.NotEmpty(t, storedState)
	f.provider.AssertCalled(t, "AuthCodeURL", storedState)
}

func TestCompleteGoogleLogin(t *testing.T) {
	info := &models.GoogleUserInfo{Sub: "g-1", Email: "jane.doe@example.com", EmailVerified: true}

	t.Run("invalid state", func(t *testing.T) {
		f := newOAuthFixture()
		f.states.On("ConsumeState", mock.Anything, "used", mock.Anything).Return(false, nil).Once()

		_, err := f.usecase.CompleteGoogleLogin(context.Background(), "used", "code")
		assert.Equal(t, 400, exceptions.StatusCodeOf(err))
		f.provider.AssertNotCalled(t, "FetchUserInfo", mock.Anything, mock.Anything)
	})

	t.Run("existing google user", func(t *testing.T) {
		f := newOAuthFixture()
		f.states.On("ConsumeState", mock.Anything, "s", mock.Anything).Return(true, nil).Once()
		f.provider.On("FetchUserInfo", mock.Anything, "code").Return(info, nil).Once()
		f.users.On("FindByGoogleSub", mock.Anything, "g-1").Return(&models.User{ID: 4, Username: "jane"}, nil).Once()

		result, err := f.usecase.CompleteGoogleLogin(context.Background(), "s", "code")
		require.NoError(t, err)
		assert.Equal(t, int64(4), result.User.ID)
	})

	t.Run("links account with same email", func(t *testing.T) {
		f := newOAuthFixture()
		f.states.On("ConsumeState", mock.Anything, "s", mock.Anything).Return(true, nil).Once()
		f.provider.On("FetchUserInfo", mock.Anything, "code").Return(info, nil).Once()
		f.users.On("FindByGoogleSub", mock.Anything, "g-1").Return(nil, nil).Once()
		f.users.On("FindByEmail", mock.Anything, "jane.doe@example.com").Return(&models.User{ID: 5, Username: "jane"}, nil).Once()
		f.users.On("LinkGoogleSub", mock.Anything, int64(5), "g-1").Return(nil).Once()

		result, err := f.usecase.CompleteGoogleLogin(context.Background(), "s", "code")
		require.NoError(t, err)
		assert.Equal(t, int64(5), result.User.ID)
		f.users.AssertExpectations(t)
	})

	t.Run("unverified email is not linked", func(t *testing.T) {
		f := newOAuthFixture()
		unverified := &models.GoogleUserInfo{Sub: "other-sub", Email: "jane.doe@example.com", EmailVerified: false}
		f.states.On("ConsumeState", mock.Anything, "s", mock.Anything).Return(true, nil).Once()
		f.provider.On("FetchUserInfo", mock.Anything, "code").Return(unverified, nil).Once()
		f.users.On("FindByGoogleSub", mock.Anything, "other-sub").Return(nil, nil).Once()

		result, err := f.usecase.CompleteGoogleLogin(context.Background(), "s", "code")
		assert.Nil(t, result)
		assert.Equal(t, 401, exceptions.StatusCodeOf(err))
		f.users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
		f.users.AssertNotCalled(t, "LinkGoogleSub", mock.Anything, mock.Anything, mock.Anything)
		f.users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("unverified email still signs in a linked google user", func(t *testing.T) {
		f := newOAuthFixture()
		linked := &models.GoogleUserInfo{Sub: "g-1", Email: "jane.doe@example.com", EmailVerified: false}
		f.states.On("ConsumeState", mock.Anything, "s", mock.Anything).Return(true, nil).Once()
		f.provider.On("FetchUserInfo", mock.Anything, "code").Return(linked, nil).Once()
		f.users.On("FindByGoogleSub", mock.Anything, "g-1").Return(&models.User{ID: 4, Username: "jane"}, nil).Once()

		result, err := f.usecase.CompleteGoogleLogin(context.Background(), "s", "code")
		require.NoError(t, err)
		assert.Equal(t, int64(4), result.User.ID)
	})

	t.Run("creates user with free username", func(t *testing.T) {
		f := newOAuthFixture()
		f.states.On("ConsumeState", mock.Anything, "s", mock.Anything).Return(true, nil).Once()
		f.provider.On("FetchUserInfo", mock.Anything, "code").Return(info, nil).Once()
		f.users.On("FindByGoogleSub", mock.Anything, "g-1").Return(nil, nil).Once()
		f.users.On("FindByEmail", mock.Anything, "jane.doe@example.com").Return(nil, nil).Once()
		f.users.On("FindByUsername", mock.Anything, "jane.doe").Return(&models.User{ID: 1}, nil).Once()
		f.users.On("FindByUsername", mock.Anything, "jane.doe1").Return(nil, nil).Once()
		f.users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Username == "jane.doe1" && !u.HasPassword() && u.GoogleSub != nil && *u.GoogleSub == "g-1"
		})).Return(&models.User{ID: 6, Username: "jane.doe1"}, nil).Once()

		result, err := f.usecase.CompleteGoogleLogin(context.Background(), "s", "code")
		require.NoError(t, err)
		assert.Equal(t, "jane.doe1", result.User.Username)
		f.users.AssertExpectations(t)
	})
}

// fakeAuthUsecase only implements StartSession; the other methods are unused
// by the OAuth flow.
type fakeAuthUsecase struct {
	mocks.AuthUsecase
}

func (f *fakeAuthUsecase) StartSession(ctx context.Context, user *models.User) (*responses.AuthResult, error) {
	return &responses.AuthResult{
		User:    responses.UserProfile{ID: user.ID, Username: user.Username},
		Session: &models.Session{SessionID: "sess", UserID: user.ID},
	}, nil
}
