// internal/engine/validator/schema.go
package validator

// workoutPlanSchema is the structural contract a model-written workout
// plan must satisfy before semantic checks run.
var workoutPlanSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"name", "description", "days"},
	"properties": map[string]interface{}{
		"name":        map[string]interface{}{"type": "string", "minLength": 1},
		"description": map[string]interface{}{"type": "string"},
		"days": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"name", "focus", "items"},
				"properties": map[string]interface{}{
					"name":     map[string]interface{}{"type": "string", "minLength": 1},
					"focus":    map[string]interface{}{"type": "string", "minLength": 1},
					"warmup":   map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
					"cooldown": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
					"items": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type":     "object",
							"required": []interface{}{"name", "sets", "reps"},
							"properties": map[string]interface{}{
								"name":        map[string]interface{}{"type": "string", "minLength": 1},
								"sets":        map[string]interface{}{"type": "integer", "minimum": 1},
								"reps":        map[string]interface{}{"type": "string", "minLength": 1},
								"restSeconds": map[string]interface{}{"type": "integer", "minimum": 0},
								"notes":       map[string]interface{}{"type": "string"},
							},
						},
					},
				},
			},
		},
	},
}

// mealPlanSchema is the structural contract for model-written meal plans.
var mealPlanSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"name", "description", "days"},
	"properties": map[string]interface{}{
		"name":        map[string]interface{}{"type": "string", "minLength": 1},
		"description": map[string]interface{}{"type": "string"},
		"days": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"name", "items"},
				"properties": map[string]interface{}{
					"name":      map[string]interface{}{"type": "string", "minLength": 1},
					"focus":     map[string]interface{}{"type": "string"},
					"snacks":    map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
					"hydration": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
					"items": map[string]interface{}{
						"type": "array",
						"items": map[string]interface{}{
							"type":     "object",
							"required": []interface{}{"name", "calories"},
							"properties": map[string]interface{}{
								"name":     map[string]interface{}{"type": "string", "minLength": 1},
								"calories": map[string]interface{}{"type": "number", "minimum": 1},
								"protein":  map[string]interface{}{"type": "number", "minimum": 0},
								"carbs":    map[string]interface{}{"type": "number", "minimum": 0},
								"fats":     map[string]interface{}{"type": "number", "minimum": 0},
								"fiber":    map[string]interface{}{"type": "number", "minimum": 0},
								"notes":    map[string]interface{}{"type": "string"},
							},
						},
					},
				},
			},
		},
	},
}
