// internal/plan/types.go
package plan

import "time"

// PlanFlavor distinguishes the two generation pipelines.
type PlanFlavor string

const (
	FlavorWorkout PlanFlavor = "workout"
	FlavorMeal    PlanFlavor = "meal"
)

// PlanSource records where a plan came from.
type PlanSource string

const (
	SourceModel    PlanSource = "model"
	SourceFallback PlanSource = "fallback"
)

// Sex is only used for the BMR formula offset.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalMaintenance Goal = "maintenance"
	GoalMuscleGain  Goal = "muscle_gain"
)

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
)

type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// FocusArea is a workout-day theme.
type FocusArea string

const (
	FocusFullBody      FocusArea = "Full Body"
	FocusUpperBody     FocusArea = "Upper Body"
	FocusLowerBody     FocusArea = "Lower Body"
	FocusChestTriceps  FocusArea = "Chest & Triceps"
	FocusBackBiceps    FocusArea = "Back & Biceps"
	FocusLegs          FocusArea = "Legs"
	FocusShouldersCore FocusArea = "Shoulders & Core"
	FocusCardioCore    FocusArea = "Cardio & Core"
)

// BiometricProfile is the immutable per-request input to metric
// computation. Weight and height are normalized to kg/cm before the
// profile is constructed.
type BiometricProfile struct {
	Age           int           `json:"age"`
	WeightKg      float64       `json:"weightKg"`
	HeightCm      float64       `json:"heightCm"`
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"goal"`
	FitnessLevel  FitnessLevel  `json:"fitnessLevel"`
	Restrictions  []string      `json:"restrictions,omitempty"`
}

// MacroSplit holds macro-nutrient fractions of total daily calories.
type MacroSplit struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
	Fiber   float64 `json:"fiber"`
}

// DerivedMetrics is computed once per request and consumed by both the
// prompt builder and the deterministic fallback so that model-written
// and fallback plans target the same nutritional envelope.
type DerivedMetrics struct {
	BMI            float64     `json:"bmi"`
	BMICategory    BMICategory `json:"bmiCategory"`
	BMR            float64     `json:"bmr"`
	TDEE           float64     `json:"tdee"`
	TargetCalories float64     `json:"targetCalories"`
	Macros         MacroSplit  `json:"macroDistribution"`
}

// Exercise is a workout catalog entry. Sets/Reps/RestSeconds drive the
// volume profile; FormCues is opaque to selection logic.
type Exercise struct {
	Name        string       `json:"name"`
	Focus       FocusArea    `json:"focus"`
	Level       FitnessLevel `json:"level"`
	Sets        int          `json:"sets"`
	Reps        string       `json:"reps"`
	RestSeconds int          `json:"restSeconds"`
	FormCues    string       `json:"formCues,omitempty"`
}

// MealItem is a meal catalog entry with its per-serving macro vector.
type MealItem struct {
	Name        string       `json:"name"`
	Type        MealType     `json:"type"`
	Level       FitnessLevel `json:"level"`
	Calories    float64      `json:"calories"`
	Protein     float64      `json:"protein"`
	Carbs       float64      `json:"carbs"`
	Fats        float64      `json:"fats"`
	Fiber       float64      `json:"fiber"`
	Preparation string       `json:"preparation,omitempty"`
	Tags        []string     `json:"tags,omitempty"`
}

// ItemName identifies the exercise inside a selection pool.
func (e Exercise) ItemName() string { return e.Name }

// Attributes exposes the volume profile the scored selector can match
// on when exercises are picked by target rather than slot count.
func (e Exercise) Attributes() map[string]float64 {
	return map[string]float64{
		"sets": float64(e.Sets),
		"rest": float64(e.RestSeconds),
	}
}

// ItemName identifies the meal inside a selection pool.
func (m MealItem) ItemName() string { return m.Name }

// Attributes exposes the macro vector the scored selector matches on.
func (m MealItem) Attributes() map[string]float64 {
	return map[string]float64{
		"calories": m.Calories,
		"protein":  m.Protein,
		"carbs":    m.Carbs,
		"fats":     m.Fats,
		"fiber":    m.Fiber,
	}
}

// PlanItem is one primary entry of a plan day: an exercise with its
// prescription, or a meal with its macro line.
type PlanItem struct {
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

// SupportBlock is a warmup/cooldown (workout) or snacks/hydration
// (meal) substructure attached to a day.
type SupportBlock struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// PlanDay is one day of a generated plan. Warmup/Cooldown are set for
// workout days, Snacks/Hydration for meal days.
type PlanDay struct {
	Name      string       `json:"name"`
	Focus     string       `json:"focus"`
	Items     []PlanItem   `json:"items"`
	Warmup    SupportBlock `json:"warmup,omitempty"`
	Cooldown  SupportBlock `json:"cooldown,omitempty"`
	Snacks    SupportBlock `json:"snacks,omitempty"`
	Hydration SupportBlock `json:"hydration,omitempty"`
	Notes     string       `json:"notes,omitempty"`
}

// GeneratedPlan is immutable once built. It carries the metrics used
// to build it and its provenance.
type GeneratedPlan struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Flavor      PlanFlavor     `json:"flavor"`
	Days        []PlanDay      `json:"days"`
	Metrics     DerivedMetrics `json:"derivedMetrics"`
	Source      PlanSource     `json:"source"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// GenerationResult is the orchestrator's outbound contract.
type GenerationResult struct {
	Plan     *GeneratedPlan `json:"plan"`
	Metrics  DerivedMetrics `json:"derivedMetrics"`
	Source   PlanSource     `json:"source"`
	Attempts int            `json:"attempts"`
}

// ValidActivityLevels is the single source of truth for activity enum
// membership, mirrored by the TDEE multiplier table.
func ValidActivityLevels() []ActivityLevel {
	return []ActivityLevel{
		ActivitySedentary, ActivityLight, ActivityModerate,
		ActivityActive, ActivityVeryActive,
	}
}

func ValidGoals() []Goal {
	return []Goal{GoalWeightLoss, GoalMaintenance, GoalMuscleGain}
}

func ValidFitnessLevels() []FitnessLevel {
	return []FitnessLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

func ValidFocusAreas() []FocusArea {
	return []FocusArea{
		FocusFullBody, FocusUpperBody, FocusLowerBody,
		FocusChestTriceps, FocusBackBiceps, FocusLegs,
		FocusShouldersCore, FocusCardioCore,
	}
}

func ValidMealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}
}
