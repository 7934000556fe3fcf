// internal/engine/builder/workout.go
package builder

import (
	"fmt"

	"fitplan-engine/internal/engine/catalog"
	"fitplan-engine/internal/engine/selector"
	"fitplan-engine/internal/plan"
)

// sixDayCycle is the focus rotation for 6 and 7 day schedules; day 7
// wraps back to the start of the cycle.
var sixDayCycle = []plan.FocusArea{
	plan.FocusChestTriceps,
	plan.FocusBackBiceps,
	plan.FocusLegs,
	plan.FocusShouldersCore,
	plan.FocusFullBody,
	plan.FocusCardioCore,
}

// focusRotation maps a weekly day count onto a focus area per day.
// Low frequencies train the whole body every session; a four or five
// day split alternates upper and lower; six or seven days run a
// body-part cycle.
func focusRotation(daysPerWeek int) []plan.FocusArea {
	rotation := make([]plan.FocusArea, daysPerWeek)
	switch {
	case daysPerWeek <= 3:
		for i := range rotation {
			rotation[i] = plan.FocusFullBody
		}
	case daysPerWeek <= 5:
		for i := range rotation {
			if i%2 == 0 {
				rotation[i] = plan.FocusUpperBody
			} else {
				rotation[i] = plan.FocusLowerBody
			}
		}
	default:
		for i := range rotation {
			rotation[i] = sixDayCycle[i%len(sixDayCycle)]
		}
	}
	return rotation
}

// BuildWorkout assembles a workout plan from the catalog. Exercises
// never repeat within a day; repeats across days are allowed. Beginner
// plans for non-normal BMI categories get the low-impact substitution
// pass before the plan is sealed.
func (b *Builder) BuildWorkout(profile plan.BiometricProfile, metrics plan.DerivedMetrics, daysPerWeek, exercisesPerDay int) *plan.GeneratedPlan {
	b.rngMu.Lock()
	defer b.rngMu.Unlock()

	rotation := focusRotation(daysPerWeek)
	days := make([]plan.PlanDay, 0, daysPerWeek)

	for i, focus := range rotation {
		pool := b.catalog.ExercisesFor(focus, profile.FitnessLevel)
		used := make(map[string]bool, exercisesPerDay)
		items := make([]plan.PlanItem, 0, exercisesPerDay)

		for len(items) < exercisesPerDay {
			e, ok := selector.PickRandom(pool, used, b.rng, b.log, "exercise")
			if !ok {
				break
			}
			used[e.Name] = true
			items = append(items, plan.PlanItem{
				Name:        e.Name,
				Sets:        e.Sets,
				Reps:        e.Reps,
				RestSeconds: e.RestSeconds,
				Notes:       e.FormCues,
			})
		}

		days = append(days, plan.PlanDay{
			Name:     fmt.Sprintf("Day %d", i+1),
			Focus:    string(focus),
			Items:    items,
			Warmup:   catalog.WarmupBlock(),
			Cooldown: catalog.CooldownBlock(),
		})
	}

	b.applySubstitutions(days, profile, metrics.BMICategory)

	description := fmt.Sprintf("A %d-day %s workout program for the %s level, built around your computed training targets.",
		daysPerWeek, goalLabel(profile.Goal), profile.FitnessLevel)
	return newPlan(plan.FlavorWorkout, days, profile, metrics, description)
}
