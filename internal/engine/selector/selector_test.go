// internal/engine/selector/selector_test.go
package selector

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitplan-engine/internal/common/logger"
)

// ==========================================
// Test Fixtures
// ==========================================

type fakeItem struct {
	name  string
	attrs map[string]float64
}

func (f fakeItem) ItemName() string                { return f.name }
func (f fakeItem) Attributes() map[string]float64 { return f.attrs }

func mealFixture(name string, calories, protein float64) fakeItem {
	return fakeItem{name: name, attrs: map[string]float64{"calories": calories, "protein": protein}}
}

// ==========================================
// Score Tests
// ==========================================

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		attrs    Vector
		target   Vector
		weights  Vector
		expected float64
	}{
		{
			name:     "exact match scores full weight per attribute",
			attrs:    Vector{"calories": 500, "protein": 30},
			target:   Vector{"calories": 500, "protein": 30},
			weights:  Vector{"calories": 1.0, "protein": 1.5},
			expected: 2.5,
		},
		{
			name:     "deviation beyond tolerance band scores zero",
			attrs:    Vector{"calories": 700},
			target:   Vector{"calories": 500},
			weights:  Vector{"calories": 1.0},
			expected: 0,
		},
		{
			name:     "half-band deviation scores half weight",
			attrs:    Vector{"calories": 550},
			target:   Vector{"calories": 500},
			weights:  Vector{"calories": 1.0},
			expected: 0.5,
		},
		{
			name:     "zero target matched by zero value",
			attrs:    Vector{"fats": 0},
			target:   Vector{"fats": 0},
			weights:  Vector{"fats": 1.0},
			expected: 1.0,
		},
		{
			name:     "zero target missed by nonzero value",
			attrs:    Vector{"fats": 2},
			target:   Vector{"fats": 0},
			weights:  Vector{"fats": 1.0},
			expected: 0,
		},
		{
			name:     "missing weight defaults to one",
			attrs:    Vector{"calories": 500},
			target:   Vector{"calories": 500},
			weights:  Vector{},
			expected: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.attrs, tt.target, tt.weights)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestScore_OnlyTargetAttributesCount(t *testing.T) {
	attrs := Vector{"calories": 500, "protein": 30, "tags": 99}
	target := Vector{"calories": 500}

	got := Score(attrs, target, DefaultWeights)

	// Attributes absent from the target contribute nothing.
	assert.InDelta(t, 1.0, got, 1e-9)
}

// ==========================================
// Select Tests
// ==========================================

func TestSelect(t *testing.T) {
	log := logger.NewNoOpLogger()
	catalog := []fakeItem{
		mealFixture("Oatmeal Bowl", 350, 12),
		mealFixture("Greek Yogurt Parfait", 420, 25),
		mealFixture("Veggie Omelette", 430, 24),
	}

	tests := []struct {
		name     string
		target   Vector
		excluded map[string]bool
		expected string
	}{
		{
			name:     "closest candidate wins",
			target:   Vector{"calories": 420, "protein": 25},
			excluded: nil,
			expected: "Greek Yogurt Parfait",
		},
		{
			name:     "excluded winner yields runner-up",
			target:   Vector{"calories": 420, "protein": 25},
			excluded: map[string]bool{"Greek Yogurt Parfait": true},
			expected: "Veggie Omelette",
		},
		{
			name:     "all excluded falls back to full catalog",
			target:   Vector{"calories": 420, "protein": 25},
			excluded: map[string]bool{"Oatmeal Bowl": true, "Greek Yogurt Parfait": true, "Veggie Omelette": true},
			expected: "Greek Yogurt Parfait",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Select(catalog, tt.target, tt.excluded, nil, log, "meal")
			require.True(t, ok)
			assert.Equal(t, tt.expected, got.ItemName())
		})
	}
}

func TestSelect_TieBreaksToFirstOccurrence(t *testing.T) {
	log := logger.NewNoOpLogger()
	catalog := []fakeItem{
		mealFixture("First Twin", 400, 20),
		mealFixture("Second Twin", 400, 20),
	}

	got, ok := Select(catalog, Vector{"calories": 400, "protein": 20}, nil, nil, log, "meal")

	require.True(t, ok)
	assert.Equal(t, "First Twin", got.ItemName())
}

func TestSelect_EmptyCatalog(t *testing.T) {
	log := logger.NewNoOpLogger()

	_, ok := Select([]fakeItem{}, Vector{"calories": 400}, nil, nil, log, "meal")

	assert.False(t, ok)
}

func TestSelect_Deterministic(t *testing.T) {
	log := logger.NewNoOpLogger()
	catalog := []fakeItem{
		mealFixture("Chicken Bowl", 520, 40),
		mealFixture("Salmon Plate", 560, 35),
		mealFixture("Tofu Stir-Fry", 480, 28),
	}
	target := Vector{"calories": 540, "protein": 38}

	first, ok := Select(catalog, target, nil, nil, log, "meal")
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := Select(catalog, target, nil, nil, log, "meal")
		require.True(t, ok)
		assert.Equal(t, first.ItemName(), again.ItemName())
	}
}

// ==========================================
// PickRandom Tests
// ==========================================

func TestPickRandom_RespectsExclusions(t *testing.T) {
	log := logger.NewNoOpLogger()
	rng := rand.New(rand.NewSource(1))
	catalog := []fakeItem{
		{name: "Push-Ups", attrs: map[string]float64{"sets": 3}},
		{name: "Squats", attrs: map[string]float64{"sets": 3}},
		{name: "Plank", attrs: map[string]float64{"sets": 3}},
	}
	excluded := map[string]bool{"Push-Ups": true, "Plank": true}

	for i := 0; i < 20; i++ {
		got, ok := PickRandom(catalog, excluded, rng, log, "exercise")
		require.True(t, ok)
		assert.Equal(t, "Squats", got.ItemName())
	}
}

func TestPickRandom_ExhaustedPoolFallsBack(t *testing.T) {
	log := logger.NewNoOpLogger()
	rng := rand.New(rand.NewSource(1))
	catalog := []fakeItem{
		{name: "Push-Ups", attrs: map[string]float64{"sets": 3}},
	}
	excluded := map[string]bool{"Push-Ups": true}

	got, ok := PickRandom(catalog, excluded, rng, log, "exercise")

	require.True(t, ok)
	assert.Equal(t, "Push-Ups", got.ItemName())
}

func TestPickRandom_EmptyCatalog(t *testing.T) {
	log := logger.NewNoOpLogger()
	rng := rand.New(rand.NewSource(1))

	_, ok := PickRandom([]fakeItem{}, nil, rng, log, "exercise")

	assert.False(t, ok)
}
