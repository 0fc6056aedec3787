// Package persona defines the synthesized persona record, the prompt that
// asks the model to produce it, and the strict decoder for the model's
// JSON response.
package persona

// Trait is one inferred observation with an optional citation back to the
// activity item that supports it.
type Trait struct {
	Item        string `json:"item"`
	CitationURL string `json:"citation_url,omitempty"`
}

// Record is the full persona. Constructed once by Decode and read-only
// afterwards. Scalar values are the model's verbatim output ("N/A" when it
// could not infer an attribute); no range validation is applied.
type Record struct {
	Name            string `json:"persona_name"`
	Age             string `json:"estimated_age"`
	Occupation      string `json:"occupation"`
	Status          string `json:"status"`
	Location        string `json:"likely_location"`
	Archetype       string `json:"archetype"`
	PersonalityType string `json:"mbti_personality"`

	Motivations  []Trait `json:"motivations"`
	Behaviors    []Trait `json:"behavior_habits"`
	Frustrations []Trait `json:"frustrations"`
	Likings      []Trait `json:"likings"`
	Goals        []Trait `json:"goals_needs"`
}
