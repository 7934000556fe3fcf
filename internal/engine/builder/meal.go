// internal/engine/builder/meal.go
package builder

import (
	"fmt"

	"fitplan-engine/internal/engine/catalog"
	"fitplan-engine/internal/engine/selector"
	"fitplan-engine/internal/plan"
)

// snackShare is reserved for the day's snack support block; primary
// meal slots split the remaining 90% of the calorie budget.
const snackShare = 0.10

// Approximate energy density per gram, used to turn calorie shares
// into gram targets for the scored selector.
const (
	kcalPerGramProtein = 4.0
	kcalPerGramCarbs   = 4.0
	kcalPerGramFats    = 9.0
	kcalPerGramFiber   = 2.0
)

type mealSlot struct {
	mealType plan.MealType
	share    float64
}

// slotPlans maps meals-per-day onto an ordered slot sequence. Shares
// within each plan sum to 0.90, leaving the snack block its 10%.
var slotPlans = map[int][]mealSlot{
	2: {
		{plan.MealBreakfast, 0.40},
		{plan.MealDinner, 0.50},
	},
	3: {
		{plan.MealBreakfast, 0.25},
		{plan.MealLunch, 0.35},
		{plan.MealDinner, 0.30},
	},
	4: {
		{plan.MealBreakfast, 0.25},
		{plan.MealLunch, 0.30},
		{plan.MealSnack, 0.10},
		{plan.MealDinner, 0.25},
	},
	5: {
		{plan.MealBreakfast, 0.20},
		{plan.MealSnack, 0.10},
		{plan.MealLunch, 0.30},
		{plan.MealSnack, 0.10},
		{plan.MealDinner, 0.20},
	},
	6: {
		{plan.MealBreakfast, 0.20},
		{plan.MealSnack, 0.08},
		{plan.MealLunch, 0.25},
		{plan.MealSnack, 0.08},
		{plan.MealDinner, 0.21},
		{plan.MealSnack, 0.08},
	},
}

func slotsFor(mealsPerDay int) []mealSlot {
	if slots, ok := slotPlans[mealsPerDay]; ok {
		return slots
	}
	return slotPlans[3]
}

// slotTarget converts a calorie share of the daily budget into the
// attribute vector the selector scores candidates against.
func slotTarget(metrics plan.DerivedMetrics, share float64) selector.Vector {
	calories := metrics.TargetCalories * share
	return selector.Vector{
		"calories": calories,
		"protein":  calories * metrics.Macros.Protein / kcalPerGramProtein,
		"carbs":    calories * metrics.Macros.Carbs / kcalPerGramCarbs,
		"fats":     calories * metrics.Macros.Fats / kcalPerGramFats,
		"fiber":    calories * metrics.Macros.Fiber / kcalPerGramFiber,
	}
}

// BuildMeal assembles a meal plan from the catalog. Each meal type
// keeps its own exclusion set for the whole week, so a given
// breakfast repeats only once every pool's worth of days. Selection
// degrades to repeats rather than failing when a pool runs dry.
func (b *Builder) BuildMeal(profile plan.BiometricProfile, metrics plan.DerivedMetrics, days, mealsPerDay int) *plan.GeneratedPlan {
	slots := slotsFor(mealsPerDay)
	usedPerType := map[plan.MealType]map[string]bool{
		plan.MealBreakfast: {},
		plan.MealLunch:     {},
		plan.MealDinner:    {},
		plan.MealSnack:     {},
	}

	planDays := make([]plan.PlanDay, 0, days)
	for d := 0; d < days; d++ {
		items := make([]plan.PlanItem, 0, len(slots))
		for _, slot := range slots {
			pool := b.catalog.MealsFor(slot.mealType)
			target := slotTarget(metrics, slot.share)
			m, ok := selector.Select(pool, target, usedPerType[slot.mealType], nil, b.log, "meal")
			if !ok {
				continue
			}
			usedPerType[slot.mealType][m.Name] = true
			items = append(items, plan.PlanItem{
				Name:     m.Name,
				Calories: m.Calories,
				Protein:  m.Protein,
				Carbs:    m.Carbs,
				Fats:     m.Fats,
				Fiber:    m.Fiber,
				Notes:    m.Preparation,
			})
		}

		planDays = append(planDays, plan.PlanDay{
			Name:      fmt.Sprintf("Day %d", d+1),
			Focus:     goalLabel(profile.Goal),
			Items:     items,
			Snacks:    b.snackBlock(metrics, usedPerType[plan.MealSnack]),
			Hydration: catalog.HydrationBlock(),
		})
	}

	description := fmt.Sprintf("A %d-day meal plan with %d meals per day targeting %.0f kcal for %s.",
		days, len(slots), metrics.TargetCalories, goalLabel(profile.Goal))
	return newPlan(plan.FlavorMeal, planDays, profile, metrics, description)
}

// snackBlock picks a snack against the snack calorie share and renders
// it into the day's support block.
func (b *Builder) snackBlock(metrics plan.DerivedMetrics, used map[string]bool) plan.SupportBlock {
	target := slotTarget(metrics, snackShare)
	pool := b.catalog.MealsFor(plan.MealSnack)
	m, ok := selector.Select(pool, target, used, nil, b.log, "meal")
	if !ok {
		return plan.SupportBlock{Title: "Snacks"}
	}
	used[m.Name] = true
	return plan.SupportBlock{
		Title: "Snacks",
		Items: []string{fmt.Sprintf("%s (%.0f kcal)", m.Name, m.Calories)},
	}
}
