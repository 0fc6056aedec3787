package persona

import (
	"encoding/json"
	"fmt"
	"strings"

	perrors "personacard/src/errors"
)

// requiredKeys lists every top-level key the model response must carry.
// A response missing any of them is rejected, never defaulted.
var requiredKeys = []string{
	"persona_name",
	"estimated_age",
	"occupation",
	"status",
	"likely_location",
	"archetype",
	"mbti_personality",
	"motivations",
	"behavior_habits",
	"frustrations",
	"likings",
	"goals_needs",
}

// ExtractJSON strips markdown code fences and any prose around the
// outermost JSON object. Models occasionally wrap JSON output this way
// even in JSON mode.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		s = s[start : end+1]
	}
	return strings.TrimSpace(s)
}

// Decode parses the raw model response into a Record. Parsing is strict:
// every required key must be present and no unknown or renamed keys are
// tolerated. Any violation is ErrMalformedPersona; there is no repair.
func Decode(raw string) (*Record, error) {
	payload := ExtractJSON(raw)

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &keys); err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrMalformedPersona, err)
	}
	for _, key := range requiredKeys {
		if _, ok := keys[key]; !ok {
			return nil, fmt.Errorf("%w: missing key %q", perrors.ErrMalformedPersona, key)
		}
	}

	dec := json.NewDecoder(strings.NewReader(payload))
	dec.DisallowUnknownFields()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrMalformedPersona, err)
	}
	return &rec, nil
}
