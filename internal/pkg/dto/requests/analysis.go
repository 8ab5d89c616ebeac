package requests

// AnalyzeImage is built by the controller from the multipart form. FileData
// is the uploaded image; the worker fields are an optional attribution for
// the recorded disease event.
type AnalyzeImage struct {
	Category     string `validate:"required,oneof=skin eye oral other"`
	PatientName  string `validate:"max=100"`
	Age          string `validate:"max=10"`
	Notes        string `validate:"max=2000"`
	WorkerName   string `validate:"max=100"`
	WorkerAshaID string `validate:"max=50"`
	WorkerMobile string `validate:"max=20"`

	FileName      string `validate:"required"`
	FileExtension string `validate:"required"`
	FileData      []byte `validate:"required"`
}
