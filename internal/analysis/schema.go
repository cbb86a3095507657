package analysis

import "github.com/yojanabuddy/teachme/internal/llm"

// Schema defines the JSON shape the oracle must return for an
// understanding analysis.
var Schema = &llm.Schema{
	Name:        "understanding-analysis",
	Description: "Structured judgment of a learner's free-text answer against the active concept",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"understanding_demonstrated": map[string]any{
				"type":        "string",
				"enum":        []any{"none", "partial", "good", "excellent"},
				"description": "How much of the concept the answer demonstrated",
			},
			"reasoning_quality": map[string]any{
				"type":        "string",
				"enum":        []any{"weak", "moderate", "strong"},
				"description": "Quality of the causal reasoning, independent of coverage",
			},
			"misconceptions_detected": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific wrong beliefs evident in the answer, one short phrase each. Empty if none.",
			},
			"needs_probing": map[string]any{
				"type":        "boolean",
				"description": "True when the answer is correct but shallow and a why/how question would deepen it",
			},
			"needs_scaffolding": map[string]any{
				"type":        "boolean",
				"description": "True when the learner is lost and needs the concept simplified with a hint",
			},
			"concept_grasped": map[string]any{
				"type":        "boolean",
				"description": "True only when the learner has genuinely understood the concept",
			},
			"key_insight": map[string]any{
				"type":        "string",
				"description": "One line: the most important thing this answer revealed about the learner",
			},
			"recommended_action": map[string]any{
				"type":        "string",
				"enum":        []any{"PROBE", "CHALLENGE", "SCAFFOLD", "VALIDATE", "MOVE_ON"},
				"description": "The pedagogical move you would make next",
			},
		},
		"required": []any{
			"understanding_demonstrated",
			"reasoning_quality",
			"misconceptions_detected",
			"needs_probing",
			"needs_scaffolding",
			"concept_grasped",
			"key_insight",
			"recommended_action",
		},
		"additionalProperties": false,
	},
}
