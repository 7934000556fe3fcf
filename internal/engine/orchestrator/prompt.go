// internal/engine/orchestrator/prompt.go
package orchestrator

import (
	"fmt"
	"strings"

	"fitplan-engine/internal/plan"
)

const systemPrompt = "You are a certified fitness and nutrition coach. " +
	"Respond with a single JSON object and nothing else."

// buildDetailedPrompt is the first-attempt prompt: full profile, full
// metric envelope, explicit shape requirements.
func buildDetailedPrompt(profile plan.BiometricProfile, metrics plan.DerivedMetrics, flavor plan.PlanFlavor, days, minItems int) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Create a personalized %d-day %s plan.", days, flavor))

	parts = append(parts, "\nClient profile:")
	parts = append(parts, fmt.Sprintf("- Age: %d", profile.Age))
	parts = append(parts, fmt.Sprintf("- Weight: %.1f kg, Height: %.1f cm", profile.WeightKg, profile.HeightCm))
	parts = append(parts, fmt.Sprintf("- Activity level: %s", profile.ActivityLevel))
	parts = append(parts, fmt.Sprintf("- Goal: %s", profile.Goal))
	parts = append(parts, fmt.Sprintf("- Fitness level: %s", profile.FitnessLevel))
	if len(profile.Restrictions) > 0 {
		parts = append(parts, fmt.Sprintf("- Restrictions: %s", strings.Join(profile.Restrictions, ", ")))
	}

	parts = append(parts, "\nComputed targets:")
	parts = append(parts, fmt.Sprintf("- BMI: %.1f (%s)", metrics.BMI, metrics.BMICategory))
	parts = append(parts, fmt.Sprintf("- Daily calorie target: %.0f kcal", metrics.TargetCalories))
	parts = append(parts, fmt.Sprintf("- Macro split: protein %.0f%%, carbs %.0f%%, fats %.0f%%, fiber %.0f%%",
		metrics.Macros.Protein*100, metrics.Macros.Carbs*100, metrics.Macros.Fats*100, metrics.Macros.Fiber*100))

	parts = append(parts, "\nRequirements:")
	parts = append(parts, fmt.Sprintf("- Exactly %d days, each with at least %d items", days, minItems))
	switch flavor {
	case plan.FlavorWorkout:
		parts = append(parts, "- Each exercise needs name, sets (integer), reps (string), restSeconds (integer)")
		parts = append(parts, "- Each day needs a focus area and should progress logically across the week")
		parts = append(parts, "- Each day needs warmup and cooldown lists with at least one entry each")
		if metrics.BMICategory != plan.BMINormal && profile.FitnessLevel == plan.LevelBeginner {
			parts = append(parts, "- Prefer low-impact exercises, avoid jumping movements")
		}
	case plan.FlavorMeal:
		parts = append(parts, "- Each meal needs name and calories, plus protein, carbs, fats and fiber in grams")
		parts = append(parts, "- Daily meals should sum close to the calorie target and respect the macro split")
		parts = append(parts, "- Each day needs snacks and hydration lists with at least one entry each")
		if len(profile.Restrictions) > 0 {
			parts = append(parts, "- Every meal must respect the listed dietary restrictions")
		}
	}

	parts = append(parts, "\nReturn JSON with this shape:")
	parts = append(parts, planShapeHint(flavor))

	return strings.Join(parts, "\n")
}

// buildSimplifiedPrompt is the degraded retry prompt: shorter, fewer
// constraints, the same output contract. A smaller model gets less to
// misread.
func buildSimplifiedPrompt(profile plan.BiometricProfile, metrics plan.DerivedMetrics, flavor plan.PlanFlavor, days, minItems int) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Create a %d-day %s JSON plan for a %s-level client, goal %s.",
		days, flavor, profile.FitnessLevel, profile.Goal))
	if flavor == plan.FlavorMeal {
		parts = append(parts, fmt.Sprintf("Daily target: %.0f kcal.", metrics.TargetCalories))
	}
	parts = append(parts, fmt.Sprintf("Each day needs at least %d items.", minItems))
	parts = append(parts, "Return only JSON with this shape:")
	parts = append(parts, planShapeHint(flavor))

	return strings.Join(parts, "\n")
}

func planShapeHint(flavor plan.PlanFlavor) string {
	if flavor == plan.FlavorMeal {
		return `{"name": "...", "description": "...", "days": [{"name": "Day 1", "items": [{"name": "...", "calories": 0, "protein": 0, "carbs": 0, "fats": 0, "fiber": 0}], "snacks": ["..."], "hydration": ["..."]}]}`
	}
	return `{"name": "...", "description": "...", "days": [{"name": "Day 1", "focus": "...", "items": [{"name": "...", "sets": 0, "reps": "...", "restSeconds": 0}], "warmup": ["..."], "cooldown": ["..."]}]}`
}
