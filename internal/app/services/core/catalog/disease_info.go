package catalog

import "arogya-service/internal/app/models"

// diseaseInfo is the static reference catalog shown alongside analysis
// results. Entries cover the skin conditions the intake flow most commonly
// reports.
var diseaseInfo = []*models.DiseaseInfo{
	{
		Name:        "Actinic keratosis",
		Description: "A rough, scaly patch on the skin caused by years of sun exposure.",
		Treatments: []string{
			"Topical medications (fluorouracil, imiquimod)",
			"Cryotherapy (freezing)",
			"Photodynamic therapy",
			"Regular sunscreen use and sun protection",
		},
		Severity: "Moderate - can develop into skin cancer if untreated",
	},
	{
		Name:        "Basal cell carcinoma",
		Description: "The most common type of skin cancer, appears as a pearly, waxy bump.",
		Treatments: []string{
			"Surgical excision",
			"Mohs surgery",
			"Radiation therapy",
			"Topical medications for superficial cases",
		},
		Severity: "High - requires medical attention",
	},
	{
		Name:        "Dermatofibroma",
		Description: "A common, harmless growth that most often appears on the legs.",
		Treatments: []string{
			"Usually no treatment needed",
			"Surgical removal if desired",
			"Monitoring for changes",
		},
		Severity: "Low - benign condition",
	},
	{
		Name:        "Melanocytic nevus",
		Description: "Common moles, usually harmless brown spots on the skin.",
		Treatments: []string{
			"Regular monitoring for changes",
			"Optional removal for cosmetic reasons",
			"Annual skin checks recommended",
		},
		Severity: "Low - but monitor for changes",
	},
	{
		Name:        "Pigmented benign keratosis",
		Description: "A harmless growth that appears as a waxy, scaly patch.",
		Treatments: []string{
			"Usually no treatment needed",
			"Cryotherapy if desired",
			"Curettage for removal",
		},
		Severity: "Low - benign condition",
	},
	{
		Name:        "Seborrheic keratosis",
		Description: "A common, harmless skin growth that appears as a waxy, scaly patch.",
		Treatments: []string{
			"Usually no treatment needed",
			"Cryotherapy",
			"Curettage or shave excision",
		},
		Severity: "Low - benign condition",
	},
	{
		Name:        "Squamous cell carcinoma",
		Description: "The second most common type of skin cancer, appears as a firm, red nodule.",
		Treatments: []string{
			"Surgical excision",
			"Mohs surgery",
			"Radiation therapy",
			"Regular monitoring",
		},
		Severity: "High - requires medical attention",
	},
	{
		Name:        "Vascular lesion",
		Description: "Abnormal clusters of blood vessels on or under the skin.",
		Treatments: []string{
			"Laser therapy",
			"Sclerotherapy",
			"Compression therapy",
			"Monitoring for changes",
		},
		Severity: "Varies - consult healthcare provider",
	},
}
