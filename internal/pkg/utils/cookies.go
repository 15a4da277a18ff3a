package utils

import (
	"moodjournal-service/internal/pkg/constvars"
	"net/http"
	"time"
)

type CookieOptions struct {
	Secure      bool
	Domain      string
	RefreshPath string
}

func SetAuthCookies(w http.ResponseWriter, opts CookieOptions, accessToken string, accessExpiresAt time.Time, refreshToken string, refreshExpiresAt time.Time, csrfToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieAccessToken,
		Value:    accessToken,
		Path:     "/",
		Domain:   opts.Domain,
		Expires:  accessExpiresAt,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieRefreshToken,
		Value:    refreshToken,
		Path:     opts.RefreshPath,
		Domain:   opts.Domain,
		Expires:  refreshExpiresAt,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	SetCSRFCookie(w, opts, csrfToken, refreshExpiresAt)
}

// SetCSRFCookie writes the double-submit cookie. It stays readable from
// scripts so the browser can echo it in the X-CSRF-TOKEN header.
func SetCSRFCookie(w http.ResponseWriter, opts CookieOptions, csrfToken string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieCSRFToken,
		Value:    csrfToken,
		Path:     "/",
		Domain:   opts.Domain,
		Expires:  expiresAt,
		HttpOnly: false,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func UnsetAuthCookies(w http.ResponseWriter, opts CookieOptions) {
	expired := time.Unix(0, 0)
	for _, cookie := range []struct {
		name     string
		path     string
		httpOnly bool
	}{
		{constvars.CookieAccessToken, "/", true},
		{constvars.CookieRefreshToken, opts.RefreshPath, true},
		{constvars.CookieCSRFToken, "/", false},
	} {
		http.SetCookie(w, &http.Cookie{
			Name:     cookie.name,
			Value:    "",
			Path:     cookie.path,
			Domain:   opts.Domain,
			Expires:  expired,
			MaxAge:   -1,
			HttpOnly: cookie.httpOnly,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func CookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
