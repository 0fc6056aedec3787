package persona

import (
	"fmt"
	"strings"

	"personacard/src/reddit"
)

// instructions fixes the target JSON shape. The field names here are the
// contract Decode enforces; change both together.
const instructions = `You are an expert UX researcher tasked with creating a detailed user persona based on the provided Reddit user activity data.
Your output MUST be a valid JSON object.

Infer the following attributes for the user. If an attribute cannot be confidently inferred, set its value to "N/A".
For list items (motivations, behavior_habits, frustrations, likings, goals_needs), provide a concise string describing the observation
and, if possible, the specific Reddit URL from the provided data that supports this inference.

JSON Structure Requirements:
{
  "persona_name": "Fictional Name (e.g., Alex S.)",
  "estimated_age": "Age Range (e.g., 25-35)",
  "occupation": "Inferred Occupation (e.g., Software Developer, Student)",
  "status": "Inferred Relationship Status (e.g., Single, Married)",
  "likely_location": "Inferred General Location (e.g., North America, Urban Area)",
  "archetype": "User Archetype (e.g., The Explorer, The Analyst, The Giver)",
  "mbti_personality": "MBTI-style Personality (e.g., INTJ, ESFP) or descriptive traits (e.g., Introverted, Analytical)",
  "motivations": [
    {"item": "Motivation 1 description", "citation_url": "URL if available"}
  ],
  "behavior_habits": [
    {"item": "Behavior/Habit 1 description", "citation_url": "URL if available"}
  ],
  "frustrations": [
    {"item": "Frustration 1 description (e.g., 'Dislikes unclear instructions')", "citation_url": "URL if available"}
  ],
  "likings": [
    {"item": "Liking 1 description (e.g., 'Enjoys discussing complex sci-fi plots')", "citation_url": "URL if available"}
  ],
  "goals_needs": [
    {"item": "Goal/Need 1 description", "citation_url": "URL if available"}
  ]
}

Ensure all keys are present, even if their values are "N/A" or empty lists.
Do not add keys beyond the structure above.
Be precise and concise in your descriptions.`

// BuildPrompt embeds the collected activity in the instruction template.
// An empty sequence still produces a prompt; the model is told there is no
// public activity and synthesis proceeds on that basis.
func BuildPrompt(items []reddit.ActivityItem) string {
	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n### USER'S REDDIT ACTIVITY DATA:\n\n")

	if len(items) == 0 {
		sb.WriteString("No public posts or comments found for this user.\n")
		return sb.String()
	}

	posts, comments := 0, 0
	for _, item := range items {
		switch item.Kind {
		case reddit.KindSubmission:
			posts++
			fmt.Fprintf(&sb, "--- POST %d ---\nTitle: %s\nContent: %s\nURL: %s\n\n",
				posts, item.Title, item.Text, item.Permalink)
		case reddit.KindComment:
			comments++
			fmt.Fprintf(&sb, "--- COMMENT %d ---\nBody: %s\nURL: %s\n\n",
				comments, item.Text, item.Permalink)
		}
	}
	return sb.String()
}
