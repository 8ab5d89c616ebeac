package analysis

import (
	"arogya-service/internal/app/models"
	"arogya-service/internal/pkg/constvars"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

const (
	defaultDisease        = "Unknown"
	defaultDescription    = "No description available"
	defaultSeverity       = "Unknown"
	defaultRecommendation = "Consult a healthcare professional"

	bulletPrefix = "• "
)

var (
	jsonSpanPattern = regexp.MustCompile(`\{[\s\S]*\}`)

	diseasePattern     = regexp.MustCompile(`"Disease name"\s*:\s*"([^"]*)"`)
	confidencePattern  = regexp.MustCompile(`"Confidence level"\s*:\s*"?(\d+)`)
	descriptionPattern = regexp.MustCompile(`"Description"\s*:\s*"([^"]*)"`)
	severityPattern    = regexp.MustCompile(`"Severity level"\s*:\s*"([^"]*)"`)
	colorPattern       = regexp.MustCompile(`"color"\s*:\s*"([^"]*)"`)
	texturePattern     = regexp.MustCompile(`"texture"\s*:\s*"([^"]*)"`)

	// The array span deliberately stops at the first closing bracket or at
	// end of input, so a truncated response still yields its complete items.
	recommendationsPattern = regexp.MustCompile(`"List of recommended (?:treatments|medicines)"\s*:\s*\[([^\]]*)`)
	quotedItemPattern      = regexp.MustCompile(`"([^"]+)"`)
)

// ParseModelResponse turns raw model output into a structured result. It
// never fails: a strict JSON parse is attempted first, then field-by-field
// regex scraping, then bare defaults, so malformed output degrades into a
// usable record instead of an error.
func ParseModelResponse(raw string, width, height int) *models.AnalysisResult {
	if span := jsonSpanPattern.FindString(raw); span != "" {
		var parsed map[string]interface{}
		if err := json.Unmarshal([]byte(span), &parsed); err == nil {
			return resultFromParsed(parsed, width, height)
		}
	}
	return resultFromScraping(raw, width, height)
}

// ErrorResult is the record returned when the upstream call itself failed.
func ErrorResult(err error) *models.AnalysisResult {
	description := "no response from model"
	if err != nil {
		description = err.Error()
	}
	return &models.AnalysisResult{
		Disease:     "Error",
		Confidence:  0,
		Description: description,
		Severity:    defaultSeverity,
		Treatments:  []string{bulletPrefix + "Please try again or consult a healthcare professional"},
		Analysis: models.VisualAnalysis{
			ColorTone: "Unknown",
			Texture:   "Unknown",
			Size:      "Unknown",
		},
		Disclaimer: constvars.AnalysisDisclaimer,
	}
}

func resultFromParsed(parsed map[string]interface{}, width, height int) *models.AnalysisResult {
	result := &models.AnalysisResult{
		Disease:     stringField(parsed, "Disease name", defaultDisease),
		Confidence:  confidenceField(parsed["Confidence level"]),
		Description: stringField(parsed, "Description", defaultDescription),
		Severity:    stringField(parsed, "Severity level", defaultSeverity),
		Treatments:  bulleted(recommendationsField(parsed)),
		Analysis: models.VisualAnalysis{
			ColorTone: "Unknown",
			Texture:   "Unknown",
			Size:      sizeString(width, height),
		},
		Disclaimer: constvars.AnalysisDisclaimer,
	}

	if visual, ok := parsed["Visual characteristics"].(map[string]interface{}); ok {
		result.Analysis.ColorTone = stringField(visual, "color", "Unknown")
		result.Analysis.Texture = stringField(visual, "texture", "Unknown")
	}
	return result
}

func resultFromScraping(raw string, width, height int) *models.AnalysisResult {
	result := &models.AnalysisResult{
		Disease:     scrapeString(diseasePattern, raw, defaultDisease),
		Confidence:  scrapeConfidence(raw),
		Description: scrapeString(descriptionPattern, raw, defaultDescription),
		Severity:    scrapeString(severityPattern, raw, defaultSeverity),
		Treatments:  bulleted(scrapeRecommendations(raw)),
		Analysis: models.VisualAnalysis{
			ColorTone: scrapeString(colorPattern, raw, "Unknown"),
			Texture:   scrapeString(texturePattern, raw, "Unknown"),
			Size:      sizeString(width, height),
		},
		Disclaimer: constvars.AnalysisDisclaimer,
	}
	return result
}

func stringField(fields map[string]interface{}, key, fallback string) string {
	if value, ok := fields[key].(string); ok && value != "" {
		return value
	}
	return fallback
}

func confidenceField(value interface{}) int {
	confidence := 0
	switch v := value.(type) {
	case float64:
		confidence = int(v)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			confidence = parsed
		}
	}
	return clampConfidence(confidence)
}

func clampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}

// recommendationsField accepts both key variants since the eye and oral
// prompts ask for medicines while skin and other ask for treatments.
func recommendationsField(parsed map[string]interface{}) []string {
	for _, key := range []string{"List of recommended treatments", "List of recommended medicines"} {
		items, ok := parsed[key].([]interface{})
		if !ok {
			continue
		}
		var recommendations []string
		for _, item := range items {
			if text, ok := item.(string); ok && text != "" {
				recommendations = append(recommendations, text)
			}
		}
		return recommendations
	}
	return nil
}

func scrapeString(pattern *regexp.Regexp, raw, fallback string) string {
	match := pattern.FindStringSubmatch(raw)
	if len(match) == 2 && match[1] != "" {
		return match[1]
	}
	return fallback
}

func scrapeConfidence(raw string) int {
	match := confidencePattern.FindStringSubmatch(raw)
	if len(match) != 2 {
		return 0
	}
	confidence, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return clampConfidence(confidence)
}

func scrapeRecommendations(raw string) []string {
	match := recommendationsPattern.FindStringSubmatch(raw)
	if len(match) != 2 {
		return nil
	}
	var recommendations []string
	for _, item := range quotedItemPattern.FindAllStringSubmatch(match[1], -1) {
		recommendations = append(recommendations, item[1])
	}
	return recommendations
}

func bulleted(recommendations []string) []string {
	if len(recommendations) == 0 {
		recommendations = []string{defaultRecommendation}
	}
	formatted := make([]string, 0, len(recommendations))
	for _, recommendation := range recommendations {
		formatted = append(formatted, bulletPrefix+recommendation)
	}
	return formatted
}

func sizeString(width, height int) string {
	if width <= 0 || height <= 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%dx%d pixels", width, height)
}
