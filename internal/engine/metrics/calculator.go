// internal/engine/metrics/calculator.go
package metrics

import (
	"fmt"

	apperrors "fitplan-engine/internal/common/errors"
	"fitplan-engine/internal/plan"
)

// Unit conversion factors for requests arriving in imperial units.
const (
	LbsToKg    = 0.453592
	InchesToCm = 2.54
)

// activityMultipliers maps activity levels to their TDEE multiplier.
// Single source of truth for valid activity levels.
var activityMultipliers = map[plan.ActivityLevel]float64{
	plan.ActivitySedentary:  1.2,
	plan.ActivityLight:      1.375,
	plan.ActivityModerate:   1.55,
	plan.ActivityActive:     1.725,
	plan.ActivityVeryActive: 1.9,
}

// goalCalorieFactors scales TDEE into a calorie target. These are
// fixed global constants: callers wanting different deficits are a
// different policy layer.
var goalCalorieFactors = map[plan.Goal]float64{
	plan.GoalWeightLoss:  0.85,
	plan.GoalMaintenance: 1.0,
	plan.GoalMuscleGain:  1.15,
}

// goalBaseSplits is the starting macro split per goal, before the
// activity delta and clamping.
var goalBaseSplits = map[plan.Goal]plan.MacroSplit{
	plan.GoalWeightLoss:  {Protein: 0.35, Carbs: 0.35, Fats: 0.20, Fiber: 0.10},
	plan.GoalMaintenance: {Protein: 0.25, Carbs: 0.45, Fats: 0.20, Fiber: 0.10},
	plan.GoalMuscleGain:  {Protein: 0.30, Carbs: 0.45, Fats: 0.15, Fiber: 0.10},
}

// activityDeltas shift calories between macros per activity level.
// Deltas are zero-sum so the split stays normalized before clamping.
var activityDeltas = map[plan.ActivityLevel]plan.MacroSplit{
	plan.ActivitySedentary:  {Protein: 0.05, Carbs: -0.05},
	plan.ActivityLight:      {},
	plan.ActivityModerate:   {},
	plan.ActivityActive:     {Carbs: 0.05, Fats: -0.05},
	plan.ActivityVeryActive: {Carbs: 0.10, Fats: -0.10},
}

// Macro clamp ranges, applied after the goal/activity adjustment.
const (
	proteinMin, proteinMax = 0.20, 0.50
	carbsMin, carbsMax     = 0.20, 0.60
	fatsMin, fatsMax       = 0.15, 0.40
	fiberMin, fiberMax     = 0.10, 0.20
)

// BMI computes body mass index from metric units.
func BMI(weightKg, heightCm float64) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, apperrors.NewInvalidInputError([]string{
			fmt.Sprintf("weightKg and heightCm must be positive, got %.2f / %.2f", weightKg, heightCm),
		})
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// BMICategory bands a BMI value with the standard WHO cutoffs,
// inclusive-lower / exclusive-upper.
func BMICategory(bmi float64) plan.BMICategory {
	switch {
	case bmi < 18.5:
		return plan.BMIUnderweight
	case bmi < 25:
		return plan.BMINormal
	case bmi < 30:
		return plan.BMIOverweight
	default:
		return plan.BMIObese
	}
}

// BMR computes basal metabolic rate via Mifflin-St Jeor. Unspecified
// or non-binary sex uses the female offset; the formula only defines
// the two offsets, so this is a documented approximation rather than
// a physiological claim.
func BMR(weightKg, heightCm float64, age int, sex plan.Sex) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, apperrors.NewInvalidInputError([]string{
			fmt.Sprintf("weightKg, heightCm and age must be positive, got %.2f / %.2f / %d", weightKg, heightCm, age),
		})
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == plan.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return bmr, nil
}

// TDEE scales BMR by the activity multiplier. Unknown levels default
// to the sedentary multiplier; enum membership is validated upstream.
func TDEE(bmr float64, level plan.ActivityLevel) float64 {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[plan.ActivitySedentary]
	}
	return bmr * mult
}

// TargetCalories applies the goal factor to TDEE.
func TargetCalories(tdee float64, goal plan.Goal) float64 {
	factor, ok := goalCalorieFactors[goal]
	if !ok {
		factor = 1.0
	}
	return tdee * factor
}

// MacroDistribution produces the macro fraction split for a goal and
// activity level: base split plus activity delta, clamped per macro,
// with any post-clamp overflow above 1.0 taken out of carbs.
func MacroDistribution(goal plan.Goal, level plan.ActivityLevel) plan.MacroSplit {
	base, ok := goalBaseSplits[goal]
	if !ok {
		base = goalBaseSplits[plan.GoalMaintenance]
	}
	delta := activityDeltas[level]

	split := plan.MacroSplit{
		Protein: clamp(base.Protein+delta.Protein, proteinMin, proteinMax),
		Carbs:   clamp(base.Carbs+delta.Carbs, carbsMin, carbsMax),
		Fats:    clamp(base.Fats+delta.Fats, fatsMin, fatsMax),
		Fiber:   clamp(base.Fiber+delta.Fiber, fiberMin, fiberMax),
	}

	if sum := split.Protein + split.Carbs + split.Fats + split.Fiber; sum > 1 {
		split.Carbs = clamp(split.Carbs-(sum-1), carbsMin, carbsMax)
	}

	return split
}

// Compute derives the full metric set for one generation request.
func Compute(profile plan.BiometricProfile) (plan.DerivedMetrics, error) {
	bmi, err := BMI(profile.WeightKg, profile.HeightCm)
	if err != nil {
		return plan.DerivedMetrics{}, err
	}

	bmr, err := BMR(profile.WeightKg, profile.HeightCm, profile.Age, profile.Sex)
	if err != nil {
		return plan.DerivedMetrics{}, err
	}

	tdee := TDEE(bmr, profile.ActivityLevel)

	return plan.DerivedMetrics{
		BMI:            bmi,
		BMICategory:    BMICategory(bmi),
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: TargetCalories(tdee, profile.Goal),
		Macros:         MacroDistribution(profile.Goal, profile.ActivityLevel),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
