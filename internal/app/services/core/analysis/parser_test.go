package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertAllFieldsPresent(t *testing.T, raw string) {
	t.Helper()
	result := ParseModelResponse(raw, 0, 0)
	assert.NotNil(t, result)
	assert.NotEmpty(t, result.Disease)
	assert.NotEmpty(t, result.Description)
	assert.NotEmpty(t, result.Severity)
	assert.NotEmpty(t, result.Treatments)
	assert.NotEmpty(t, result.Analysis.ColorTone)
	assert.NotEmpty(t, result.Analysis.Texture)
	assert.NotEmpty(t, result.Analysis.Size)
	assert.NotEmpty(t, result.Disclaimer)
	assert.GreaterOrEqual(t, result.Confidence, 0)
	assert.LessOrEqual(t, result.Confidence, 100)
}

func TestParseModelResponseWellFormedJSON(t *testing.T) {
	raw := `{
		"Disease name": "Acne",
		"Confidence level": 82,
		"Description": "Inflammatory skin condition",
		"Severity level": "Mild",
		"List of recommended medicines": ["Benzoyl peroxide"],
		"Visual characteristics": {"color": "red", "texture": "bumpy"}
	}`

	result := ParseModelResponse(raw, 640, 480)

	assert.Equal(t, "Acne", result.Disease)
	assert.Equal(t, 82, result.Confidence)
	assert.Equal(t, "Mild", result.Severity)
	assert.Equal(t, "Inflammatory skin condition", result.Description)
	assert.Len(t, result.Treatments, 1)
	assert.Equal(t, "• Benzoyl peroxide", result.Treatments[0])
	assert.Equal(t, "red", result.Analysis.ColorTone)
	assert.Equal(t, "bumpy", result.Analysis.Texture)
	assert.Equal(t, "640x480 pixels", result.Analysis.Size)
}

func TestParseModelResponseTreatmentsKeyVariant(t *testing.T) {
	raw := `{
		"Disease name": "Eczema",
		"Confidence level": 70,
		"List of recommended treatments": ["Moisturizer", "Topical steroid"]
	}`

	result := ParseModelResponse(raw, 0, 0)

	assert.Equal(t, "Eczema", result.Disease)
	assert.Equal(t, []string{"• Moisturizer", "• Topical steroid"}, result.Treatments)
	assert.Equal(t, "No description available", result.Description)
	assert.Equal(t, "Unknown", result.Severity)
	assert.Equal(t, "Unknown", result.Analysis.Size)
}

func TestParseModelResponseJSONInProse(t *testing.T) {
	raw := `Here is my analysis of the image:
{"Disease name": "Psoriasis", "Confidence level": 65, "Severity level": "Moderate", "List of recommended treatments": ["Coal tar"]}
I hope this helps.`

	result := ParseModelResponse(raw, 0, 0)

	assert.Equal(t, "Psoriasis", result.Disease)
	assert.Equal(t, 65, result.Confidence)
	assert.Equal(t, "Moderate", result.Severity)
	assert.Equal(t, []string{"• Coal tar"}, result.Treatments)
}

func TestParseModelResponseTruncatedArray(t *testing.T) {
	// The closing brackets never arrive, so the structural parse fails and
	// the scraper has to recover the fields.
	raw := `{"Disease name": "Ringworm", "Confidence level": 77, "Severity level": "Mild", "List of recommended treatments": ["Antifungal cream", "Keep area dry`

	result := ParseModelResponse(raw, 0, 0)

	assert.Equal(t, "Ringworm", result.Disease)
	assert.Equal(t, 77, result.Confidence)
	assert.Equal(t, "Mild", result.Severity)
	assert.Contains(t, result.Treatments, "• Antifungal cream")
	assertAllFieldsPresent(t, raw)
}

func TestParseModelResponseProseOnly(t *testing.T) {
	raw := `I am unable to identify a specific condition from this image. Please provide a clearer photograph.`

	result := ParseModelResponse(raw, 0, 0)

	assert.Equal(t, "Unknown", result.Disease)
	assert.Equal(t, 0, result.Confidence)
	assert.Equal(t, []string{"• Consult a healthcare professional"}, result.Treatments)
	assertAllFieldsPresent(t, raw)
}

func TestParseModelResponseEmptyString(t *testing.T) {
	result := ParseModelResponse("", 0, 0)

	assert.Equal(t, "Unknown", result.Disease)
	assert.Equal(t, 0, result.Confidence)
	assert.Equal(t, "No description available", result.Description)
	assertAllFieldsPresent(t, "")
}

func TestParseModelResponseConfidenceHandling(t *testing.T) {
	t.Run("String confidence parsed", func(t *testing.T) {
		result := ParseModelResponse(`{"Disease name": "X", "Confidence level": "88"}`, 0, 0)
		assert.Equal(t, 88, result.Confidence)
	})

	t.Run("Out of range clamped", func(t *testing.T) {
		result := ParseModelResponse(`{"Disease name": "X", "Confidence level": 250}`, 0, 0)
		assert.Equal(t, 100, result.Confidence)
	})

	t.Run("Non-numeric defaults to zero", func(t *testing.T) {
		result := ParseModelResponse(`{"Disease name": "X", "Confidence level": "high"}`, 0, 0)
		assert.Equal(t, 0, result.Confidence)
	})
}

func TestErrorResult(t *testing.T) {
	result := ErrorResult(errors.New("model unavailable"))

	assert.Equal(t, "Error", result.Disease)
	assert.Equal(t, 0, result.Confidence)
	assert.Equal(t, "model unavailable", result.Description)
	assert.Equal(t, "Unknown", result.Severity)
	assert.Len(t, result.Treatments, 1)
	assert.Contains(t, result.Treatments[0], "consult a healthcare professional")
	assert.Equal(t, "Unknown", result.Analysis.Size)
	assert.NotEmpty(t, result.Disclaimer)

	t.Run("Nil error still produces a record", func(t *testing.T) {
		result := ErrorResult(nil)
		assert.Equal(t, "Error", result.Disease)
		assert.NotEmpty(t, result.Description)
	})
}
