package jobmatch

import "github.com/abhisek/bizpro/internal/llm"

func stringList(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": desc,
	}
}

// ResultSchema is the shape a model reply must have. The verdict fields
// are required; the point lists and TOEIC estimates may be omitted.
var ResultSchema = &llm.Schema{
	Name:        "job-match",
	Description: "Job-match verdict for a business English diagnosis",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"matchLevel": map[string]any{
				"type": "string",
				"enum": []any{"high", "medium", "low", "not_ready"},
			},
			"matchDescription":      map[string]any{"type": "string"},
			"matchingPoints":        stringList("Requirements the candidate already meets"),
			"gapPoints":             stringList("Areas that need strengthening"),
			"advice":                map[string]any{"type": "string"},
			"estimatedToeicRange":   map[string]any{"type": "string"},
			"requiredToeicEstimate": map[string]any{"type": "string"},
		},
		"required": []any{"matchLevel", "matchDescription", "advice"},
	},
}
