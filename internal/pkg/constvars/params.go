package constvars

const (
	URLParamJournalID = "journal_id"
	URLParamEntryID   = "entry_id"
)

const (
	URLQueryParamJournalID = "journal_id"
	URLQueryParamFrom      = "from"
	URLQueryParamTo        = "to"
	URLQueryParamYear      = "year"
	URLQueryParamMonth     = "month"
	URLQueryParamLimit     = "limit"
	URLQueryParamState     = "state"
	URLQueryParamCode      = "code"
	URLQueryParamError     = "error"
)

const (
	OAuthErrorInvalidState = "invalid_state"
	OAuthErrorExchange     = "exchange_failed"
	OAuthErrorUserInfo     = "userinfo_failed"
	OAuthErrorAccount      = "account_failed"
	OAuthErrorDenied       = "access_denied"
)
