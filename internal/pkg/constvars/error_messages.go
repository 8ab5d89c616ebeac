package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"base64":   "must be a valid base64 string",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process your request, please check your input"
	ErrClientServerLongRespond             = "server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "you are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientInvalidImageFormat            = "invalid file type, please upload an image (PNG, JPG, JPEG, GIF, WEBP)"
	ErrClientImageTooLarge                 = "uploaded image exceeds the maximum allowed size"
	ErrClientNoFileProvided                = "no file provided"
	ErrClientSearchCriteriaRequired        = "at least one of name or phone is required"

	// Failure results surfaced with success=false rather than an HTTP error
	ErrClientPatientAlreadyExists = "patient with this name already exists in database"
	ErrClientPatientNotFound      = "patient not found"
	ErrClientUserNotFound         = "user not found"
	ErrClientWorkerMobileExists   = "asha worker with this mobile number already exists"
	ErrClientWorkerIDExists       = "asha worker with this id already exists"
	ErrClientWorkerNotFound       = "worker not found"
	ErrClientWorkerNoChanges      = "no changes made"
	ErrClientInvalidPassword      = "invalid password"
	ErrClientSubmissionNotFound   = "submission not found"
	ErrClientDiseaseNotInCatalog  = "no information available for this disease"
)

// Error messages for developers
const (
	ErrDevValidationFailed         = "VALIDATION_FAILED"
	ErrDevImageValidationFailed    = "IMAGE_VALIDATION_FAILED"
	ErrDevCannotParseJSON          = "CANNOT_PARSE_JSON"
	ErrDevCannotParseMultipartForm = "CANNOT_PARSE_MULTIPART_FORM"
	ErrDevFailedToHashPassword     = "FAILED_TO_HASH_PASSWORD"
	ErrDevServerDeadlineExceeded   = "SERVER_DEADLINE_EXCEEDED"
	ErrDevServerProcess            = "SERVER_PROCESS_ERROR"
	ErrDevInvalidInput             = "INVALID_INPUT"

	ErrDevAuthTokenMissing          = "AUTH_TOKEN_MISSING"
	ErrDevAuthTokenInvalidOrExpired = "AUTH_TOKEN_INVALID_OR_EXPIRED"
	ErrDevAuthGenerateToken         = "AUTH_GENERATE_TOKEN_FAILED"
	ErrDevAuthSigningMethod         = "AUTH_UNEXPECTED_SIGNING_METHOD"
	ErrDevAuthSessionNotFound       = "AUTH_SESSION_NOT_FOUND"

	ErrDevDBFailedToFindDocument   = "DB_FAILED_TO_FIND_DOCUMENT"
	ErrDevDBFailedToInsertDocument = "DB_FAILED_TO_INSERT_DOCUMENT"
	ErrDevDBFailedToUpdateDocument = "DB_FAILED_TO_UPDATE_DOCUMENT"
	ErrDevDBFailedToIterateDocuments = "DB_FAILED_TO_ITERATE_DOCUMENTS"

	ErrDevRedisGetData    = "REDIS_FAILED_TO_GET_DATA"
	ErrDevRedisSetData    = "REDIS_FAILED_TO_SET_DATA"
	ErrDevRedisDeleteData = "REDIS_FAILED_TO_DELETE_DATA"

	ErrDevMinioFailedToCreateObject = "MINIO_FAILED_TO_CREATE_OBJECT_IN_BUCKET_%s"

	ErrDevQueuePublishMessage = "QUEUE_FAILED_TO_PUBLISH_MESSAGE_%s"

	ErrDevModelGenerateContent = "MODEL_FAILED_TO_GENERATE_CONTENT"

	ErrDevFileSaveTemp   = "FILE_FAILED_TO_SAVE_TEMP"
	ErrDevFileRemoveTemp = "FILE_FAILED_TO_REMOVE_TEMP"
)
