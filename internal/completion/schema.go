package completion

import "github.com/yojanabuddy/teachme/internal/llm"

// Schema defines the JSON shape for the completion report.
var Schema = &llm.Schema{
	Name:        "completion-report",
	Description: "Risk-weighted revision plan and performance breakdown for a finished tutoring session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"exam_risk_areas": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"risk_level": map[string]any{
							"type": "string",
							"enum": []any{"high", "medium", "low"},
						},
						"area": map[string]any{
							"type":        "string",
							"description": "The specific concept or skill at risk",
						},
						"issue_type": map[string]any{
							"type": "string",
							"enum": []any{"concept", "writing", "exam-mistake"},
						},
						"fix": map[string]any{
							"type":        "string",
							"description": "One-line remedy",
						},
						"exam_impact": map[string]any{
							"type":        "string",
							"description": "How this shows up as lost marks",
						},
					},
					"required":             []any{"risk_level", "area", "issue_type", "fix", "exam_impact"},
					"additionalProperties": false,
				},
			},
			"revision_plan": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"focus": map[string]any{
							"type":        "string",
							"description": "What to revise",
						},
						"task": map[string]any{
							"type":        "string",
							"description": "Concrete revision activity",
						},
						"key_fact": map[string]any{
							"type":        "string",
							"description": "The single fact to memorize for this item",
						},
					},
					"required":             []any{"focus", "task", "key_fact"},
					"additionalProperties": false,
				},
			},
			"performance_breakdown": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"conceptual_understanding": map[string]any{
						"type": "integer", "minimum": 0, "maximum": 100,
					},
					"writing_skills": map[string]any{
						"type": "integer", "minimum": 0, "maximum": 100,
					},
					"exam_readiness": map[string]any{
						"type": "integer", "minimum": 0, "maximum": 100,
					},
					"consistency": map[string]any{
						"type": "integer", "minimum": 0, "maximum": 100,
					},
					"strengths": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"improvements": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required": []any{
					"conceptual_understanding", "writing_skills",
					"exam_readiness", "consistency", "strengths", "improvements",
				},
				"additionalProperties": false,
			},
			"motivational_message": map[string]any{
				"type":        "string",
				"description": "Two or three encouraging sentences grounded in the session",
			},
		},
		"required": []any{
			"exam_risk_areas", "revision_plan",
			"performance_breakdown", "motivational_message",
		},
		"additionalProperties": false,
	},
}
