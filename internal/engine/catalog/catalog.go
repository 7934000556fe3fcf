// internal/engine/catalog/catalog.go
package catalog

import (
	"fitplan-engine/internal/common/errors"
	"fitplan-engine/internal/plan"
)

// Substitute is a lower-impact replacement plus the note appended to
// the substituted item.
type Substitute struct {
	Name string
	Note string
}

// Catalog holds every item the deterministic builder can draw from.
// The built-in catalog is complete on its own; extension files merge
// additional items on top of it at startup.
type Catalog struct {
	Exercises     map[plan.FocusArea]map[plan.FitnessLevel][]plan.Exercise
	Meals         map[plan.MealType][]plan.MealItem
	Substitutions map[plan.BMICategory]map[string]Substitute
}

// Builtin returns a fresh copy of the compiled-in catalog. Callers get
// their own maps so merging extensions never mutates shared state.
func Builtin() *Catalog {
	c := &Catalog{
		Exercises:     make(map[plan.FocusArea]map[plan.FitnessLevel][]plan.Exercise),
		Meals:         make(map[plan.MealType][]plan.MealItem),
		Substitutions: make(map[plan.BMICategory]map[string]Substitute),
	}
	for focus, levels := range builtinExercises {
		c.Exercises[focus] = make(map[plan.FitnessLevel][]plan.Exercise)
		for level, items := range levels {
			c.Exercises[focus][level] = append([]plan.Exercise(nil), items...)
		}
	}
	for mealType, items := range builtinMeals {
		c.Meals[mealType] = append([]plan.MealItem(nil), items...)
	}
	for category, subs := range builtinSubstitutions {
		table := make(map[string]Substitute, len(subs))
		for name, sub := range subs {
			table[name] = sub
		}
		c.Substitutions[category] = table
	}
	return c
}

// AddExercise appends an exercise to its focus/level cell.
func (c *Catalog) AddExercise(e plan.Exercise) {
	if c.Exercises[e.Focus] == nil {
		c.Exercises[e.Focus] = make(map[plan.FitnessLevel][]plan.Exercise)
	}
	c.Exercises[e.Focus][e.Level] = append(c.Exercises[e.Focus][e.Level], e)
}

// AddMeal appends a meal to its type pool.
func (c *Catalog) AddMeal(m plan.MealItem) {
	c.Meals[m.Type] = append(c.Meals[m.Type], m)
}

// ExercisesFor returns the pool for a focus area at a fitness level.
func (c *Catalog) ExercisesFor(focus plan.FocusArea, level plan.FitnessLevel) []plan.Exercise {
	return c.Exercises[focus][level]
}

// MealsFor returns the pool for a meal type.
func (c *Catalog) MealsFor(mealType plan.MealType) []plan.MealItem {
	return c.Meals[mealType]
}

// SubstituteFor looks up a lower-impact replacement for an item name
// under a BMI category. The second return is false when the item needs
// no substitution.
func (c *Catalog) SubstituteFor(category plan.BMICategory, name string) (Substitute, bool) {
	sub, ok := c.Substitutions[category][name]
	return sub, ok
}

// Validate checks that every cell the builder can reach is populated.
// An empty cell is a deployment defect, caught at startup rather than
// on the first unlucky request.
func (c *Catalog) Validate() error {
	focuses := []plan.FocusArea{
		plan.FocusFullBody, plan.FocusUpperBody, plan.FocusLowerBody,
		plan.FocusChestTriceps, plan.FocusBackBiceps, plan.FocusLegs,
		plan.FocusShouldersCore, plan.FocusCardioCore,
	}
	for _, focus := range focuses {
		for _, level := range plan.ValidFitnessLevels() {
			if len(c.Exercises[focus][level]) == 0 {
				return errors.NewCatalogExhaustedError(string(focus), string(level))
			}
		}
	}
	for _, mealType := range []plan.MealType{plan.MealBreakfast, plan.MealLunch, plan.MealDinner, plan.MealSnack} {
		if len(c.Meals[mealType]) == 0 {
			return errors.NewCatalogExhaustedError(string(mealType), "any")
		}
	}
	return nil
}

// WarmupBlock is the fixed warmup attached to every fallback workout day.
func WarmupBlock() plan.SupportBlock {
	return plan.SupportBlock{
		Title: "Warmup (5-10 minutes)",
		Items: []string{
			"Light cardio: brisk walk or easy cycling",
			"Arm circles and shoulder rolls",
			"Leg swings, front-to-back and side-to-side",
			"Bodyweight good mornings",
		},
	}
}

// CooldownBlock is the fixed cooldown attached to every fallback workout day.
func CooldownBlock() plan.SupportBlock {
	return plan.SupportBlock{
		Title: "Cooldown (5-10 minutes)",
		Items: []string{
			"Slow walk until heart rate settles",
			"Standing quad and hamstring stretch, 30s per side",
			"Chest doorway stretch, 30s",
			"Child's pose, 60s",
		},
	}
}

// HydrationBlock is the fixed hydration guidance attached to every
// fallback meal day.
func HydrationBlock() plan.SupportBlock {
	return plan.SupportBlock{
		Title: "Hydration",
		Items: []string{
			"Drink 2-3 liters of water spread across the day",
			"One glass of water with each meal",
			"Extra 500ml around training sessions",
		},
	}
}
