package utils

import (
	"fmt"
	"moodjournal-service/internal/pkg/constvars"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var usernameDisallowedChars = regexp.MustCompile(constvars.RegexUsernameDisallowedChars)

// GenerateUsernameBase derives a username candidate from the local part of
// an email address. The result only holds allowed characters and is cut so
// that a numeric suffix still fits the column.
func GenerateUsernameBase(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	base := usernameDisallowedChars.ReplaceAllString(local, "")
	if len(base) < constvars.UsernameMinLength {
		base = "user" + base
	}
	if len(base) > constvars.UsernameMaxLength-4 {
		base = base[:constvars.UsernameMaxLength-4]
	}
	return base
}

func GenerateUsernameCandidate(base string, attempt int) string {
	if attempt == 0 {
		return base
	}
	return fmt.Sprintf("%s%d", base, attempt)
}

func GenerateExportObjectName(userID int64, now time.Time) string {
	return fmt.Sprintf(constvars.ExportObjectNameFormat, userID, now.UTC().Format("20060102T150405Z"))
}

func GenerateRequestID() string {
	return uuid.NewString()
}
