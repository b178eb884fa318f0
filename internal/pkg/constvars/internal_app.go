package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY   ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY ContextKey = "session_data"
)

const (
	REQUEST_ID_PREFIX = "preplan"
)

const (
	MongoCollectionUsers     = "users"
	MongoCollectionSections  = "sections"
	MongoCollectionRoutines  = "routines"
	MongoCollectionSwaps     = "swaps"
	MongoCollectionFaculty   = "faculty"
	MongoCollectionSnapshots = "feed_snapshots"
)

const (
	RedisSessionKeyPrefix = "session:"
)

const (
	QueueSwapEvents = "swap-events"
)

const (
	StorageBucketImports = "imports"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

const (
	SwapStatusPending   = "pending"
	SwapStatusAccepted  = "accepted"
	SwapStatusRejected  = "rejected"
	SwapStatusCancelled = "cancelled"
)
