package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingQueryKey         = "query"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingUserIDKey        = "user_id"
	LoggingSessionIDKey     = "session_id"
	LoggingJournalIDKey     = "journal_id"
	LoggingEntryIDKey       = "entry_id"
	LoggingUsernameKey      = "username"
	LoggingCountKey         = "count"
	LoggingRedisKey         = "redis_key"
	LoggingLockValueKey     = "lock_value"
	LoggingQueueKey         = "queue"
	LoggingBucketKey        = "bucket"
	LoggingObjectKey        = "object"
	LoggingPromptSourceKey  = "prompt_source"
	LoggingLockExpiresInKey = "lock_expires_in"
)
