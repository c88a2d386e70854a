package llm

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/faqmine"
)

// ResponseItem is one FAQ as returned by the model.
type ResponseItem struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Language   string `json:"language"`
	Confidence string `json:"confidence"`
}

// ParseResponse decodes the FAQs in a model reply. Code fences and prose
// around the JSON are ignored. Both a bare array and an object with a
// "faqs" array are accepted. Items without a question or answer are dropped.
// Returns EINVALID if the reply holds no decodable JSON.
func ParseResponse(text string) ([]ResponseItem, error) {
	cleaned := strings.NewReplacer("```json", "", "```JSON", "", "```", "").Replace(text)

	start := strings.IndexAny(cleaned, "[{")
	end := strings.LastIndexAny(cleaned, "]}")
	if start < 0 || end < start {
		return nil, faqmine.Errorf(faqmine.EINVALID, "no JSON in model response")
	}
	cleaned = cleaned[start : end+1]

	var items []ResponseItem
	if cleaned[0] == '[' {
		if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
			return nil, faqmine.Errorf(faqmine.EINVALID, "malformed model response: %v", err)
		}
	} else {
		var wrapped struct {
			FAQs []ResponseItem `json:"faqs"`
		}
		if err := json.Unmarshal([]byte(cleaned), &wrapped); err != nil {
			return nil, faqmine.Errorf(faqmine.EINVALID, "malformed model response: %v", err)
		}
		items = wrapped.FAQs
	}

	valid := make([]ResponseItem, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.Question) == "" || strings.TrimSpace(item.Answer) == "" {
			continue
		}
		valid = append(valid, item)
	}
	return valid, nil
}
