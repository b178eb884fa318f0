package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
	"base64":   "must be a valid base64 string",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientSectionNotFound               = "the requested section could not be found"
	ErrClientCourseNotFound                = "the requested course could not be found"
	ErrClientRoutineNotFound               = "the requested routine could not be found"
	ErrClientSwapNotFound                  = "the requested swap could not be found"
	ErrClientSwapAlreadyClosed             = "this swap request is no longer open"
	ErrClientTooManyRoutines               = "cannot merge more than 10 routines"
	ErrClientUserNotFound                  = "the requested user could not be found"
	ErrClientAccountDeactivated            = "this account has been deactivated"
	ErrClientCatalogUnavailable            = "course catalog is currently unavailable"
	ErrClientInvalidCSV                    = "the uploaded file is not a valid CSV"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevCannotHashPassword       = "cannot hash the supplied password"
	ErrDevCannotSignJWT            = "cannot sign the JWT with the configured secret"
	ErrDevCannotParseJWT           = "cannot parse or verify the supplied JWT"
	ErrDevMissingBearerToken       = "authorization header is missing or not a bearer token"
	ErrDevSessionNotFound          = "session key does not exist in redis"
	ErrDevMongoFailedToFind        = "mongodb failed to execute find"
	ErrDevMongoFailedToFindOne     = "mongodb failed to execute find one"
	ErrDevMongoFailedToInsert      = "mongodb failed to execute insert"
	ErrDevMongoFailedToUpdate      = "mongodb failed to execute update"
	ErrDevMongoFailedToDelete      = "mongodb failed to execute delete"
	ErrDevMongoNoDocuments         = "mongodb returned no documents"
	ErrDevRedisFailedToSet         = "redis failed to execute set"
	ErrDevRedisFailedToGet         = "redis failed to execute get"
	ErrDevRedisFailedToDelete      = "redis failed to execute delete"
	ErrDevMinioFailedToUpload      = "minio failed to upload object"
	ErrDevMinioFailedToEnsure      = "minio failed to ensure bucket exists"
	ErrDevQueueFailedToPublish     = "rabbitmq failed to publish message"
	ErrDevQueueFailedToDeclare     = "rabbitmq failed to declare queue"
	ErrDevCatalogFeedRequest       = "catalog feed request failed"
	ErrDevCatalogFeedDecode        = "cannot decode catalog feed payload"
	ErrDevCannotDecodeRoutine      = "cannot decode stored routine payload"
	ErrDevCannotReadCSV            = "cannot read uploaded csv file"
)
