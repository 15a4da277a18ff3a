package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"email_format": "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"gt":           "must be greater than %s",
	"oneof":        "must be one of [%s]",
	"password":     "must be at least 8 characters long and contain at least one number and one special character",
	"username":     "may only contain letters, numbers, underscores and dots",
	"clean_name":   "contains inappropriate content",
	"hexcolor_six": "must be a hex color like #a1b2c3",
	"not_future":   "must not be after the current year",
}

// Tags whose message embeds the validator parameter
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"gt":    true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "You are not logged in"
	ErrClientSessionExpired                = "Your session has expired, please login again"
	ErrClientEmailAlreadyExists            = "Email is already in use"
	ErrClientUsernameAlreadyExists         = "Username is already taken"
	ErrClientUserNotFound                  = "User not found"
	ErrClientIncorrectPassword             = "Incorrect password"
	ErrClientPasswordLoginUnavailable      = "This account signs in with Google"
	ErrClientCSRFTokenInvalid              = "CSRF token missing or invalid"
	ErrClientJournalNotFound               = "Journal not found"
	ErrClientJournalTitleExists            = "A journal with this title already exists"
	ErrClientEntryNotFound                 = "Entry not found"
	ErrClientMoodNotFound                  = "One or more moods do not exist"
	ErrClientInvalidDateRange              = "Invalid date range"
	ErrClientInvalidOAuthState             = "Invalid or expired OAuth state"
	ErrClientTooManyRequests               = "Too many requests, you are blocked temporarily."
	ErrClientRequestBodyTooLarge           = "Request body too large"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal JSON"
	ErrDevURLParamIDValidationFailed = "url param %s is not a valid id"
	ErrDevURLQueryValidationFailed   = "url query %s is not valid"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevMissingRequestID           = "request id not found in context"
	ErrDevMissingSession             = "session not found in context"
	ErrDevFailedToHashPassword       = "failed to hash password"

	ErrDevEmailAlreadyExists    = "email already exists"
	ErrDevUsernameAlreadyExists = "username already exists"
	ErrDevUserNotExists         = "user not exists"
	ErrDevInvalidCredentials    = "invalid credentials"
	ErrDevPasswordlessAccount   = "account has no password hash"

	ErrDevAuthTokenMissing          = "auth token missing"
	ErrDevAuthTokenInvalid          = "auth token invalid"
	ErrDevAuthTokenInvalidOrExpired = "auth token invalid or expired"
	ErrDevAuthTokenWrongType        = "auth token has the wrong type"
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthGenerateToken         = "failed to generate auth token"
	ErrDevAuthSessionNotFound       = "session not found in redis"
	ErrDevAuthRefreshTokenReused    = "refresh token already consumed"
	ErrDevCSRFTokenMissing          = "csrf header or cookie missing"
	ErrDevCSRFTokenMismatch         = "csrf header does not match cookie"
	ErrDevCSRFTokenUnknown          = "csrf token not issued by this server"
	ErrDevGenerateRandomToken       = "failed to generate random token"

	ErrDevJournalNotExists     = "journal not exists or not owned by user"
	ErrDevJournalTitleConflict = "journal title already exists for user"
	ErrDevEntryNotExists       = "entry not exists or not owned by user"
	ErrDevMoodNotExists        = "mood ids not found"

	ErrDevOAuthStateInvalid    = "oauth state missing, used or expired"
	ErrDevOAuthExchange        = "oauth code exchange failed"
	ErrDevOAuthUserInfo        = "oauth userinfo request failed"
	ErrDevOAuthEmailUnverified = "google account email is not verified"
	ErrDevAIGenerate           = "ai prompt generation failed"
	ErrDevAIEmptyResponse      = "ai returned an empty prompt"

	ErrDevDBFailedToFindData     = "failed to find data in postgres"
	ErrDevDBFailedToInsertData   = "failed to insert data into postgres"
	ErrDevDBFailedToUpdateData   = "failed to update data in postgres"
	ErrDevDBFailedToDeleteData   = "failed to delete data in postgres"
	ErrDevDBFailedToIterateData  = "failed to iterate rows from postgres"
	ErrDevDBFailedToBeginTx      = "failed to begin postgres transaction"
	ErrDevDBFailedToCommitTx     = "failed to commit postgres transaction"
	ErrDevRedisGetNoData         = "no data found in redis for key %s"
	ErrDevRedisGetData           = "failed to get data from redis"
	ErrDevRedisSetData           = "failed to set data in redis"
	ErrDevRedisDeleteData        = "failed to delete data in redis"
	ErrDevRedisIncrementValue    = "failed to increment value in redis"
	ErrDevRedisUnlock            = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
	ErrDevMinioCreateObject      = "failed to create object in bucket %s"
	ErrDevMinioPresignObject     = "failed to presign object in bucket %s"
	ErrDevTooManyRequests        = "rate limit exceeded"
)
