package models

// AnalysisResult is the structured form of one vision-model response. It is
// built per request and returned to the caller; only the disease name is ever
// condensed into a patient's record.
type AnalysisResult struct {
	Disease     string         `json:"disease"`
	Confidence  int            `json:"confidence"`
	Description string         `json:"description"`
	Severity    string         `json:"severity"`
	Treatments  []string       `json:"treatments"`
	Analysis    VisualAnalysis `json:"analysis"`
	Disclaimer  string         `json:"disclaimer"`
}

type VisualAnalysis struct {
	ColorTone string `json:"color_tone"`
	Texture   string `json:"texture"`
	Size      string `json:"size"`
}
