package service

import (
	"encoding/json"
	"strings"

	"github.com/paymind/paymind-server/internal/models"
)

// ExtractedField is one label/value pair pulled out of a customer reply.
type ExtractedField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ParsedAnalysis is the classification of one customer reply. Structured
// reports whether the fields came from JSON the model emitted or from the
// deterministic fallback, so callers handle both branches explicitly instead
// of relying on exception-style control flow.
type ParsedAnalysis struct {
	Structured       bool             `json:"structured"`
	Intent           string           `json:"intent"`
	IntentConfidence int              `json:"intentConfidence"`
	Sentiment        models.Sentiment `json:"sentiment"`
	ExtractedInfo    []ExtractedField `json:"extractedInfo"`
	SuggestedActions []string         `json:"suggestedActions"`
	DraftResponse    string           `json:"draftResponse"`
	RiskLevel        models.RiskLevel `json:"riskLevel"`
}

// rawAnalysis tolerates partially filled model output.
type rawAnalysis struct {
	Intent           string           `json:"intent"`
	IntentConfidence int              `json:"intentConfidence"`
	Sentiment        string           `json:"sentiment"`
	ExtractedInfo    []ExtractedField `json:"extractedInfo"`
	SuggestedActions []string         `json:"suggestedActions"`
	DraftResponse    string           `json:"draftResponse"`
	RiskLevel        string           `json:"riskLevel"`
}

// ParseAnalysis locates the first balanced JSON object in the model's free
// text and parses it. Models wrap the object in prose or code fences, so the
// span is extracted before decoding. When no parsable object exists the
// deterministic fallback is returned; the response step never hard-fails on a
// malformed reply.
func ParseAnalysis(content string) ParsedAnalysis {
	span, ok := extractJSONObject(content)
	if !ok {
		return fallbackAnalysis(content)
	}

	var raw rawAnalysis
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return fallbackAnalysis(content)
	}

	parsed := ParsedAnalysis{
		Structured:       true,
		Intent:           raw.Intent,
		IntentConfidence: raw.IntentConfidence,
		Sentiment:        models.Sentiment(raw.Sentiment),
		ExtractedInfo:    raw.ExtractedInfo,
		SuggestedActions: raw.SuggestedActions,
		DraftResponse:    raw.DraftResponse,
		RiskLevel:        models.RiskLevel(raw.RiskLevel),
	}

	if parsed.Intent == "" {
		parsed.Intent = "unknown"
	}
	if parsed.IntentConfidence == 0 {
		parsed.IntentConfidence = 50
	}
	if parsed.Sentiment == "" {
		parsed.Sentiment = models.SentimentNeutral
	}
	if parsed.ExtractedInfo == nil {
		parsed.ExtractedInfo = []ExtractedField{}
	}
	if parsed.SuggestedActions == nil {
		parsed.SuggestedActions = []string{}
	}
	if parsed.RiskLevel == "" {
		parsed.RiskLevel = models.RiskMedium
	}

	return parsed
}

func fallbackAnalysis(content string) ParsedAnalysis {
	return ParsedAnalysis{
		Structured:       false,
		Intent:           "unknown",
		IntentConfidence: 50,
		Sentiment:        models.SentimentNeutral,
		ExtractedInfo:    []ExtractedField{},
		SuggestedActions: []string{"Review response manually"},
		DraftResponse:    content,
		RiskLevel:        models.RiskMedium,
	}
}

// extractJSONObject returns the first balanced {...} span in s. Braces inside
// JSON strings are skipped so prose like "see {above}" after a quote cannot
// unbalance the scan.
func extractJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
