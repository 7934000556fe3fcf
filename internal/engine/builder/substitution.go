// internal/engine/builder/substitution.go
package builder

import "fitplan-engine/internal/plan"

// applySubstitutions swaps high-impact exercises for lower-impact
// variants in place. It only fires for beginners whose BMI falls
// outside the normal band; substitute names are never substitution
// keys, so running the pass twice is a no-op. A swap is skipped when
// the variant is already one of the day's exercises, otherwise a pool
// holding both the key and its variant would yield the same exercise
// twice in one day.
func (b *Builder) applySubstitutions(days []plan.PlanDay, profile plan.BiometricProfile, category plan.BMICategory) {
	if profile.FitnessLevel != plan.LevelBeginner {
		return
	}
	if category == plan.BMINormal || category == "" {
		return
	}

	for di := range days {
		names := make(map[string]bool, len(days[di].Items))
		for _, item := range days[di].Items {
			names[item.Name] = true
		}

		for ii := range days[di].Items {
			item := &days[di].Items[ii]
			sub, ok := b.catalog.SubstituteFor(category, item.Name)
			if !ok {
				continue
			}
			if names[sub.Name] {
				b.log.Warn("substitution skipped, variant already scheduled", map[string]interface{}{
					"original":    item.Name,
					"substitute":  sub.Name,
					"day":         days[di].Name,
					"bmiCategory": string(category),
				})
				continue
			}
			b.log.Info("substituted high-impact exercise", map[string]interface{}{
				"original":    item.Name,
				"substitute":  sub.Name,
				"bmiCategory": string(category),
			})
			delete(names, item.Name)
			names[sub.Name] = true
			item.Name = sub.Name
			if item.Notes != "" {
				item.Notes = item.Notes + ". " + sub.Note
			} else {
				item.Notes = sub.Note
			}
		}
	}
}
