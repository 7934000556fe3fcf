// internal/engine/validator/validator.go
package validator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"fitplan-engine/internal/common/logger"
	"fitplan-engine/internal/plan"
)

// Shape is what the current request expects of a model-written plan.
type Shape struct {
	Flavor         plan.PlanFlavor
	ExpectedDays   int
	MinItemsPerDay int
}

// Result aggregates every violation found in one pass, so a single
// validation failure reports the full distance to a usable plan.
type Result struct {
	Valid  bool
	Errors []string
}

// ModelPlan is the decoded wire form of a model completion. The
// orchestrator converts it into a plan.GeneratedPlan only after it
// validates clean.
type ModelPlan struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Days        []ModelDay `json:"days"`
}

type ModelDay struct {
	Name      string      `json:"name"`
	Focus     string      `json:"focus"`
	Items     []ModelItem `json:"items"`
	Warmup    []string    `json:"warmup,omitempty"`
	Cooldown  []string    `json:"cooldown,omitempty"`
	Snacks    []string    `json:"snacks,omitempty"`
	Hydration []string    `json:"hydration,omitempty"`
	Notes     string      `json:"notes,omitempty"`
}

type ModelItem struct {
	Name        string  `json:"name"`
	Sets        int     `json:"sets,omitempty"`
	Reps        string  `json:"reps,omitempty"`
	RestSeconds int     `json:"restSeconds,omitempty"`
	Calories    float64 `json:"calories,omitempty"`
	Protein     float64 `json:"protein,omitempty"`
	Carbs       float64 `json:"carbs,omitempty"`
	Fats        float64 `json:"fats,omitempty"`
	Fiber       float64 `json:"fiber,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// Validator checks model completions structurally and semantically.
type Validator struct {
	log logger.Logger
}

func New(log logger.Logger) *Validator {
	return &Validator{log: log}
}

// Validate parses and checks a raw completion against a shape. All
// violations are collected; the returned ModelPlan is only meaningful
// when Result.Valid is true.
func (v *Validator) Validate(raw string, shape Shape) (*ModelPlan, Result) {
	raw = stripCodeFence(raw)

	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, Result{Errors: []string{fmt.Sprintf("completion is not valid JSON: %v", err)}}
	}

	schema := workoutPlanSchema
	if shape.Flavor == plan.FlavorMeal {
		schema = mealPlanSchema
	}

	schemaResult, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, Result{Errors: []string{fmt.Sprintf("schema validation error: %v", err)}}
	}

	var violations []string
	if !schemaResult.Valid() {
		for _, e := range schemaResult.Errors() {
			violations = append(violations, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
		}
		// Structural failures make semantic checks unreliable, stop here.
		v.log.Debug("completion failed schema validation", map[string]interface{}{
			"flavor":     string(shape.Flavor),
			"violations": violations,
		})
		return nil, Result{Errors: violations}
	}

	var mp ModelPlan
	if err := json.Unmarshal([]byte(raw), &mp); err != nil {
		return nil, Result{Errors: []string{fmt.Sprintf("completion decode failed: %v", err)}}
	}

	violations = append(violations, v.checkSemantics(&mp, shape)...)
	if len(violations) > 0 {
		v.log.Debug("completion failed semantic validation", map[string]interface{}{
			"flavor":     string(shape.Flavor),
			"violations": violations,
		})
		return nil, Result{Errors: violations}
	}
	return &mp, Result{Valid: true}
}

func (v *Validator) checkSemantics(mp *ModelPlan, shape Shape) []string {
	var violations []string

	if len(mp.Days) != shape.ExpectedDays {
		violations = append(violations, fmt.Sprintf("expected %d days, got %d", shape.ExpectedDays, len(mp.Days)))
	}

	for i, day := range mp.Days {
		if len(day.Items) < shape.MinItemsPerDay {
			violations = append(violations, fmt.Sprintf("day %d (%s): expected at least %d items, got %d",
				i+1, day.Name, shape.MinItemsPerDay, len(day.Items)))
		}
		for j, item := range day.Items {
			if strings.TrimSpace(item.Name) == "" {
				violations = append(violations, fmt.Sprintf("day %d item %d: empty name", i+1, j+1))
			}
			switch shape.Flavor {
			case plan.FlavorWorkout:
				if item.Sets <= 0 {
					violations = append(violations, fmt.Sprintf("day %d item %d (%s): sets must be positive", i+1, j+1, item.Name))
				}
				if strings.TrimSpace(item.Reps) == "" {
					violations = append(violations, fmt.Sprintf("day %d item %d (%s): missing reps", i+1, j+1, item.Name))
				}
			case plan.FlavorMeal:
				if item.Calories <= 0 {
					violations = append(violations, fmt.Sprintf("day %d item %d (%s): calories must be positive", i+1, j+1, item.Name))
				}
			}
		}
		switch shape.Flavor {
		case plan.FlavorWorkout:
			if strings.TrimSpace(day.Focus) == "" {
				violations = append(violations, fmt.Sprintf("day %d (%s): missing focus", i+1, day.Name))
			}
			if len(day.Warmup) == 0 {
				violations = append(violations, fmt.Sprintf("day %d (%s): missing warmup", i+1, day.Name))
			}
			if len(day.Cooldown) == 0 {
				violations = append(violations, fmt.Sprintf("day %d (%s): missing cooldown", i+1, day.Name))
			}
		case plan.FlavorMeal:
			if len(day.Snacks) == 0 {
				violations = append(violations, fmt.Sprintf("day %d (%s): missing snacks", i+1, day.Name))
			}
			if len(day.Hydration) == 0 {
				violations = append(violations, fmt.Sprintf("day %d (%s): missing hydration", i+1, day.Name))
			}
		}
	}

	return violations
}

// ToPlanDays converts a validated model plan into domain plan days.
func (mp *ModelPlan) ToPlanDays() []plan.PlanDay {
	days := make([]plan.PlanDay, 0, len(mp.Days))
	for _, d := range mp.Days {
		items := make([]plan.PlanItem, 0, len(d.Items))
		for _, it := range d.Items {
			items = append(items, plan.PlanItem{
				Name:        it.Name,
				Sets:        it.Sets,
				Reps:        it.Reps,
				RestSeconds: it.RestSeconds,
				Calories:    it.Calories,
				Protein:     it.Protein,
				Carbs:       it.Carbs,
				Fats:        it.Fats,
				Fiber:       it.Fiber,
				Notes:       it.Notes,
			})
		}
		days = append(days, plan.PlanDay{
			Name:      d.Name,
			Focus:     d.Focus,
			Items:     items,
			Warmup:    supportBlock("Warmup", d.Warmup),
			Cooldown:  supportBlock("Cooldown", d.Cooldown),
			Snacks:    supportBlock("Snacks", d.Snacks),
			Hydration: supportBlock("Hydration", d.Hydration),
			Notes:     d.Notes,
		})
	}
	return days
}

func supportBlock(title string, items []string) plan.SupportBlock {
	if len(items) == 0 {
		return plan.SupportBlock{}
	}
	return plan.SupportBlock{Title: title, Items: items}
}

// stripCodeFence removes a markdown fence some models wrap JSON in.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
