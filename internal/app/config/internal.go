package config

import "time"

type InternalConfig struct {
	App    App
	JWT    AppJWT
	CSRF   AppCSRF
	OAuth  AppOAuth
	AI     AppAI
	Mailer AppMailer
	Export AppExport
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	FrontendURL                string
	EndpointPrefix             string
	CookieDomain               string
	CookieSecure               bool
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	MaxTimeRequestsPerSeconds  int
	RequestBodyLimitInMegabyte int
	LoginRateLimitPerMinute    int
	LoginBlockDurationInMinute int
}

type AppJWT struct {
	Secret                string
	AccessTTLInMinutes    int
	RefreshTTLInHours     int
	RefreshCookiePathName string
}

type AppCSRF struct {
	AnonymousTTLInMinutes int
}

type AppOAuth struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	StateTTLInMinutes  int
	FrontendCallback   string
	CleanupCronSpec    string
}

type AppAI struct {
	APIKey            string
	Model             string
	DailyQuota        int
	RequestTimeoutSec int
}

type AppMailer struct {
	RabbitMQQueue string
}

type AppExport struct {
	BucketName         string
	URLExpiryInMinutes int
}

func (c *InternalConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *InternalConfig) AccessTTL() time.Duration {
	return time.Duration(c.JWT.AccessTTLInMinutes) * time.Minute
}

func (c *InternalConfig) RefreshTTL() time.Duration {
	return time.Duration(c.JWT.RefreshTTLInHours) * time.Hour
}

func (c *InternalConfig) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *InternalConfig) AnonymousCSRFTTL() time.Duration {
	return time.Duration(c.CSRF.AnonymousTTLInMinutes) * time.Minute
}

func (c *InternalConfig) OAuthStateTTL() time.Duration {
	return time.Duration(c.OAuth.StateTTLInMinutes) * time.Minute
}
