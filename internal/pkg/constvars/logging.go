package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingSessionIDKey  = "session_id"
	LoggingUserIDKey     = "user_id"
	LoggingEmailKey      = "email"
	LoggingMethodKey     = "method"
	LoggingPathKey       = "path"
	LoggingStatusKey     = "status"
	LoggingDurationKey   = "duration"
	LoggingErrorKey      = "error"
	LoggingSectionIDKey  = "section_id"
	LoggingCourseCodeKey = "course_code"
	LoggingSwapIDKey     = "swap_id"
	LoggingQueueKey      = "queue"
	LoggingBucketKey     = "bucket"
	LoggingObjectKey     = "object"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
