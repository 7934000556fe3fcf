// internal/server/models.go
package server

import (
	"fitplan-engine/internal/common/validation"
	enginemetrics "fitplan-engine/internal/engine/metrics"
	"fitplan-engine/internal/plan"
)

// GenerateRequest is the inbound body for both generation routes.
// Weight and height accept metric or imperial fields; imperial values
// are converted before the profile is built.
type GenerateRequest struct {
	OwnerID    string `json:"ownerId"`
	Biometrics struct {
		Age          int     `json:"age"`
		WeightKg     float64 `json:"weightKg,omitempty"`
		WeightLbs    float64 `json:"weightLbs,omitempty"`
		HeightCm     float64 `json:"heightCm,omitempty"`
		HeightInches float64 `json:"heightInches,omitempty"`
		Sex          string  `json:"sex,omitempty"`
	} `json:"biometrics"`
	ActivityLevel string   `json:"activityLevel"`
	Goal          string   `json:"goal"`
	FitnessLevel  string   `json:"fitnessLevel,omitempty"`
	DaysPerWeek   int      `json:"daysPerWeek,omitempty"`
	MealsPerDay   int      `json:"mealsPerDay,omitempty"`
	Restrictions  []string `json:"restrictions,omitempty"`
}

// Profile normalizes the request into the metric-unit biometric
// profile the engine consumes.
func (r *GenerateRequest) Profile() plan.BiometricProfile {
	weightKg := r.Biometrics.WeightKg
	if weightKg == 0 && r.Biometrics.WeightLbs > 0 {
		weightKg = r.Biometrics.WeightLbs * enginemetrics.LbsToKg
	}
	heightCm := r.Biometrics.HeightCm
	if heightCm == 0 && r.Biometrics.HeightInches > 0 {
		heightCm = r.Biometrics.HeightInches * enginemetrics.InchesToCm
	}
	fitnessLevel := plan.FitnessLevel(r.FitnessLevel)
	if fitnessLevel == "" {
		fitnessLevel = plan.LevelBeginner
	}
	return plan.BiometricProfile{
		Age:           r.Biometrics.Age,
		WeightKg:      weightKg,
		HeightCm:      heightCm,
		Sex:           plan.Sex(r.Biometrics.Sex),
		ActivityLevel: plan.ActivityLevel(r.ActivityLevel),
		Goal:          plan.Goal(r.Goal),
		FitnessLevel:  fitnessLevel,
		Restrictions:  r.Restrictions,
	}
}

// GenerateResponse is the outbound body for both generation routes.
type GenerateResponse struct {
	PlanID         string              `json:"planId,omitempty"`
	Plan           *plan.GeneratedPlan `json:"plan"`
	DerivedMetrics plan.DerivedMetrics `json:"derivedMetrics"`
	Source         plan.PlanSource     `json:"source"`
	Attempts       int                 `json:"attempts"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func enumValues[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

var biometricsSchema = validation.Property{
	Type:     "object",
	Required: []string{"age"},
	RequireOneOf: [][]string{
		{"weightKg", "weightLbs"},
		{"heightCm", "heightInches"},
	},
	Properties: map[string]validation.Property{
		"age":          {Type: "number", Minimum: validation.Num(1), Maximum: validation.Num(120)},
		"weightKg":     {Type: "number", Minimum: validation.Num(1)},
		"weightLbs":    {Type: "number", Minimum: validation.Num(1)},
		"heightCm":     {Type: "number", Minimum: validation.Num(1)},
		"heightInches": {Type: "number", Minimum: validation.Num(1)},
		"sex":          {Type: "string", Enum: []string{"male", "female"}},
	},
}

// workoutRequestSchema bounds the workout generation body before any
// engine work happens; violations come back aggregated.
var workoutRequestSchema = validation.JSONSchema{
	Type:     "object",
	Required: []string{"biometrics", "activityLevel", "goal"},
	Properties: map[string]validation.Property{
		"ownerId":       {Type: "string", MinLength: intPtr(1)},
		"biometrics":    biometricsSchema,
		"activityLevel": {Type: "string", Enum: enumValues(plan.ValidActivityLevels())},
		"goal":          {Type: "string", Enum: enumValues(plan.ValidGoals())},
		"fitnessLevel":  {Type: "string", Enum: enumValues(plan.ValidFitnessLevels())},
		"daysPerWeek":   {Type: "number", Minimum: validation.Num(1), Maximum: validation.Num(7)},
		"restrictions":  {Type: "array", Items: &validation.Property{Type: "string"}},
	},
}

var mealRequestSchema = validation.JSONSchema{
	Type:     "object",
	Required: []string{"biometrics", "activityLevel", "goal"},
	Properties: map[string]validation.Property{
		"ownerId":       {Type: "string", MinLength: intPtr(1)},
		"biometrics":    biometricsSchema,
		"activityLevel": {Type: "string", Enum: enumValues(plan.ValidActivityLevels())},
		"goal":          {Type: "string", Enum: enumValues(plan.ValidGoals())},
		"fitnessLevel":  {Type: "string", Enum: enumValues(plan.ValidFitnessLevels())},
		"mealsPerDay":   {Type: "number", Minimum: validation.Num(2), Maximum: validation.Num(6)},
		"restrictions":  {Type: "array", Items: &validation.Property{Type: "string"}},
	},
}

func intPtr(v int) *int { return &v }
