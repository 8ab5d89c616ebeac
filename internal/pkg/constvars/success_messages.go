package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Patient messages
	PatientCreatedSuccess            = "new patient added successfully to database"
	PatientCreatedSharedPhoneSuccess = "new patient added successfully, note: this phone number was already registered to a different name"
	PatientFoundSuccess              = "patient found"
	DiseaseRecordedSuccessFormat     = "added disease '%s' for %s"

	// Worker messages
	WorkerCreatedSuccess = "new asha worker added successfully to database"
	WorkerUpdatedSuccess = "profile updated successfully"
	WorkerFoundSuccess   = "worker found"
	LoginSuccess         = "login successful"

	// Analysis messages
	AnalysisSuccess        = "image analyzed successfully"
	SubmissionsListSuccess = "submissions retrieved successfully"
	SubmissionGetSuccess   = "submission retrieved successfully"

	// Catalog messages
	DiseaseCatalogListSuccess = "disease catalog retrieved successfully"
	DiseaseCatalogGetSuccess  = "disease information retrieved successfully"
)
