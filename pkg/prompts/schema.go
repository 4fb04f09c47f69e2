package prompts

// Response schemas sent with each generation request. The schema is
// the contract: every field the simulator reads is declared required
// here, and the validator still fails closed if the provider deviates.

// RandomArticleSchema declares the shape of a generated article draft.
// The category value is advisory; unknown values are coerced to the
// default downstream rather than rejected.
func RandomArticleSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title":    map[string]interface{}{"type": "string"},
			"content":  map[string]interface{}{"type": "string"},
			"category": map[string]interface{}{"type": "string"},
		},
		"required": []string{"title", "content", "category"},
	}
}

// AnalysisSchema declares the full simulation result shape: scores,
// text verdicts, stock analysis, secondary indices, media coverage and
// the comment tree. Comment sentiment is enum-restricted.
func AnalysisSchema() map[string]interface{} {
	replySchema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"username": map[string]interface{}{"type": "string"},
			"content":  map[string]interface{}{"type": "string"},
			"likes":    map[string]interface{}{"type": "integer"},
		},
		"required": []string{"username", "content", "likes"},
	}

	commentSchema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"platform": map[string]interface{}{"type": "string"},
			"username": map[string]interface{}{"type": "string"},
			"content":  map[string]interface{}{"type": "string"},
			"likes":    map[string]interface{}{"type": "integer"},
			"sentiment": map[string]interface{}{
				"type": "string",
				"enum": []string{"positive", "negative", "neutral"},
			},
			"replies": map[string]interface{}{
				"type":  "array",
				"items": replySchema,
			},
		},
		"required": []string{"platform", "username", "content", "likes", "sentiment", "replies"},
	}

	stockSchema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"index_name":  map[string]interface{}{"type": "string"},
			"start_value": map[string]interface{}{"type": "number"},
			"end_value":   map[string]interface{}{"type": "number"},
			"commentary":  map[string]interface{}{"type": "string"},
			"graph_data": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"time":  map[string]interface{}{"type": "string"},
						"value": map[string]interface{}{"type": "number"},
					},
					"required": []string{"time", "value"},
				},
			},
			"affected_sectors": map[string]interface{}{
				"type": "array",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"name":           map[string]interface{}{"type": "string"},
						"change_percent": map[string]interface{}{"type": "number"},
					},
					"required": []string{"name", "change_percent"},
				},
			},
		},
		"required": []string{"index_name", "start_value", "end_value", "commentary", "graph_data", "affected_sectors"},
	}

	coverageSchema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"outlet":   map[string]interface{}{"type": "string"},
			"headline": map[string]interface{}{"type": "string"},
			"tone":     map[string]interface{}{"type": "string"},
		},
		"required": []string{"outlet", "headline", "tone"},
	}

	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"virality_score":    map[string]interface{}{"type": "number"},
			"reliability_score": map[string]interface{}{"type": "number"},
			"controversy_score": map[string]interface{}{"type": "number"},
			"sentiment":         map[string]interface{}{"type": "string"},
			"editor_feedback":   map[string]interface{}{"type": "string"},
			"social_impact":     map[string]interface{}{"type": "string"},
			"expected_views":    map[string]interface{}{"type": "integer"},
			"expected_shares":   map[string]interface{}{"type": "integer"},
			"stock_analysis": map[string]interface{}{
				"type":  "array",
				"items": stockSchema,
			},
			"extra_indices": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"anxiety_index":   map[string]interface{}{"type": "number"},
					"stability_index": map[string]interface{}{"type": "number"},
					"anger_index":     map[string]interface{}{"type": "number"},
				},
				"required": []string{"anxiety_index", "stability_index", "anger_index"},
			},
			"other_media_coverage": map[string]interface{}{
				"type":  "array",
				"items": coverageSchema,
			},
			"comments": map[string]interface{}{
				"type":  "array",
				"items": commentSchema,
			},
		},
		"required": []string{
			"virality_score", "reliability_score", "controversy_score",
			"sentiment", "editor_feedback", "social_impact",
			"expected_views", "expected_shares",
			"stock_analysis", "extra_indices",
			"other_media_coverage", "comments",
		},
	}
}

// ReplyReactionSchema declares the shape of third-order reactions: a
// bare array of reply objects.
func ReplyReactionSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"username": map[string]interface{}{"type": "string"},
				"content":  map[string]interface{}{"type": "string"},
				"likes":    map[string]interface{}{"type": "integer"},
			},
			"required": []string{"username", "content", "likes"},
		},
	}
}
