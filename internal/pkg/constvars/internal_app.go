package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "ARGY_SVC_"
)

const (
	URLParamUsername     = "username"
	URLParamDiseaseName  = "diseaseName"
	URLParamSubmissionID = "submissionID"
)

const (
	MongoCollectionPatients    = "patients"
	MongoCollectionAshaWorkers = "asha_workers"
	MongoCollectionSubmissions = "submissions"
)

const (
	AnalysisCategorySkin  = "skin"
	AnalysisCategoryEye   = "eye"
	AnalysisCategoryOral  = "oral"
	AnalysisCategoryOther = "other"
)

// Fields a worker is allowed to change on profile update.
var WorkerUpdatableFields = map[string]bool{
	"name":      true,
	"asha_id":   true,
	"mobile":    true,
	"education": true,
	"years":     true,
	"village":   true,
	"photo":     true,
	"password":  true,
}

var ImageAllowedUploadExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

const (
	DiseaseEventQueueName = "disease_event_notifications"
)
