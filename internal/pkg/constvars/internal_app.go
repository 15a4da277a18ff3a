package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
)

const (
	ResourceUsers    = "users"
	ResourceJournals = "journals"
	ResourceEntries  = "entries"
	ResourceMoods    = "moods"
	ResourceAuth     = "auth"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

const (
	RedisSessionKeyFormat      = "session:%s"
	RedisUserSessionsKeyFormat = "user_sessions:%d"
	RedisRefreshKeyFormat      = "refresh:%s"
	RedisCSRFKeyFormat         = "csrf:%s"
	RedisMoodSeedLockKey       = "lock:mood-seed"
	RedisOAuthCleanupLockKey   = "lock:oauth-state-cleanup"
	AIPromptLimiterGroupName   = "ai_prompt"
	AIPromptLimiterWindowInSec = 86400
)

const (
	DateLayout          = "2006-01-02"
	JournalYearMin      = 1900
	DefaultJournalColor = "#ffffff"
	MoodTrendDefault    = 30
	MoodTrendMaxLimit   = 365
	CSRFTokenBytes      = 32
	OAuthStateBytes     = 32
	UsernameMaxLength   = 20
	UsernameMinLength   = 3
)

const (
	EmailSubjectWelcome        = "Welcome to Moodjournal"
	EmailSubjectAccountDeleted = "Your Moodjournal account was deleted"
	EmailBodyWelcomeFormat     = "Hi %s, your journal is ready. Write your first entry today."
	EmailBodyDeletedFormat     = "Hi %s, your account and all of its journals have been deleted."
)

const (
	ExportObjectNameFormat = "exports/%d/%s.json"
)

// Substrings rejected in usernames, matched case-insensitively after
// stripping separators.
var BlockedUsernameWords = []string{
	"admin",
	"root",
	"moderator",
	"fuck",
	"shit",
	"bitch",
	"cunt",
	"nazi",
	"whore",
	"slut",
}
