package models

// DiseaseInfo is a static reference entry for a known condition.
type DiseaseInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Treatments  []string `json:"treatments"`
	Severity    string   `json:"severity"`
}
