package oauth

import (
	"context"
	"fmt"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

type googleProvider struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewGoogleProvider(cfg *config.InternalConfig) contracts.OAuthProvider {
	return &googleProvider{
		config: &oauth2.Config{
			ClientID:     cfg.OAuth.GoogleClientID,
			ClientSecret: cfg.OAuth.GoogleClientSecret,
			RedirectURL:  cfg.OAuth.GoogleRedirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		userInfoURL: googleUserInfoURL,
	}
}

func (p *googleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.SetAuthURLParam("prompt", "select_account"))
}

// FetchUserInfo exchanges code for a token and reads the OpenID userinfo
// document with it.
func (p *googleProvider) FetchUserInfo(ctx context.Context, code string) (*models.GoogleUserInfo, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, exceptions.ErrOAuthExchange(err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, exceptions.ErrOAuthUserInfo(err)
	}
	response, err := p.config.Client(ctx, token).Do(request)
	if err != nil {
		return nil, exceptions.ErrOAuthUserInfo(err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, exceptions.ErrOAuthUserInfo(fmt.Errorf("userinfo returned status %d", response.StatusCode))
	}

	info := new(models.GoogleUserInfo)
	if err := json.NewDecoder(response.Body).Decode(info); err != nil {
		return nil, exceptions.ErrOAuthUserInfo(err)
	}
	if info.Sub == "" || info.Email == "" {
		return nil, exceptions.ErrOAuthUserInfo(fmt.Errorf("userinfo is missing sub or email"))
	}
	return info, nil
}
