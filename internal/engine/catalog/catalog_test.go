// internal/engine/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitplan-engine/internal/common/errors"
	"fitplan-engine/internal/plan"
)

// ==========================================
// Builtin Catalog Tests
// ==========================================

func TestBuiltin_ValidatesClean(t *testing.T) {
	c := Builtin()

	assert.NoError(t, c.Validate())
}

func TestBuiltin_EveryCellPopulated(t *testing.T) {
	c := Builtin()
	focuses := []plan.FocusArea{
		plan.FocusFullBody, plan.FocusUpperBody, plan.FocusLowerBody,
		plan.FocusChestTriceps, plan.FocusBackBiceps, plan.FocusLegs,
		plan.FocusShouldersCore, plan.FocusCardioCore,
	}

	for _, focus := range focuses {
		for _, level := range plan.ValidFitnessLevels() {
			pool := c.ExercisesFor(focus, level)
			assert.GreaterOrEqualf(t, len(pool), 4, "cell %s/%s", focus, level)
			for _, e := range pool {
				assert.Equal(t, focus, e.Focus)
				assert.Equal(t, level, e.Level)
				assert.Positive(t, e.Sets)
				assert.NotEmpty(t, e.Reps)
			}
		}
	}
}

func TestBuiltin_MealPoolsPopulated(t *testing.T) {
	c := Builtin()

	for _, mealType := range []plan.MealType{plan.MealBreakfast, plan.MealLunch, plan.MealDinner, plan.MealSnack} {
		pool := c.MealsFor(mealType)
		assert.GreaterOrEqualf(t, len(pool), 8, "meal type %s", mealType)
		for _, m := range pool {
			assert.Equal(t, mealType, m.Type)
			assert.Positive(t, m.Calories)
		}
	}
}

func TestBuiltin_CopiesAreIndependent(t *testing.T) {
	first := Builtin()
	second := Builtin()

	first.AddMeal(plan.MealItem{Name: "Test Meal", Type: plan.MealSnack, Calories: 100})

	assert.Len(t, second.MealsFor(plan.MealSnack), len(first.MealsFor(plan.MealSnack))-1)
}

// ==========================================
// Validation Tests
// ==========================================

func TestValidate_EmptyExerciseCell(t *testing.T) {
	c := Builtin()
	c.Exercises[plan.FocusLegs][plan.LevelAdvanced] = nil

	err := c.Validate()

	require.Error(t, err)
	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeCatalogExhausted, stdErr.Code)
}

func TestValidate_EmptyMealPool(t *testing.T) {
	c := Builtin()
	c.Meals[plan.MealDinner] = nil

	err := c.Validate()

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCatalogExhausted, errors.CodeOf(err))
}

// ==========================================
// Substitution Table Tests
// ==========================================

func TestSubstitutions_TargetsAreNotKeys(t *testing.T) {
	c := Builtin()

	// A substitute that is itself substitutable would make the
	// post-pass non-idempotent.
	for category, table := range c.Substitutions {
		for _, sub := range table {
			_, again := table[sub.Name]
			assert.Falsef(t, again, "category %s: substitute %q is also a key", category, sub.Name)
		}
	}
}

func TestSubstituteFor(t *testing.T) {
	c := Builtin()

	tests := []struct {
		name      string
		category  plan.BMICategory
		exercise  string
		wantSub   bool
		wantName  string
	}{
		{
			name:     "jump squats swapped for overweight",
			category: plan.BMIOverweight,
			exercise: "Jump Squats",
			wantSub:  true,
			wantName: "Bodyweight Squats",
		},
		{
			name:     "burpees swapped for obese",
			category: plan.BMIObese,
			exercise: "Burpees",
			wantSub:  true,
			wantName: "Incline Squat Thrusts",
		},
		{
			name:     "normal BMI never substitutes",
			category: plan.BMINormal,
			exercise: "Jump Squats",
			wantSub:  false,
		},
		{
			name:     "low-impact exercise untouched",
			category: plan.BMIObese,
			exercise: "Plank",
			wantSub:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, ok := c.SubstituteFor(tt.category, tt.exercise)
			assert.Equal(t, tt.wantSub, ok)
			if tt.wantSub {
				assert.Equal(t, tt.wantName, sub.Name)
			}
		})
	}
}

// ==========================================
// Support Block Tests
// ==========================================

func TestSupportBlocks(t *testing.T) {
	assert.NotEmpty(t, WarmupBlock().Items)
	assert.NotEmpty(t, CooldownBlock().Items)
	assert.NotEmpty(t, HydrationBlock().Items)
}
