// internal/engine/builder/builder.go

// Package builder constructs plans deterministically from the catalog.
// It is the terminal stage of generation: once the model attempts are
// spent, a plan from here is always returned.
package builder

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"fitplan-engine/internal/common/logger"
	"fitplan-engine/internal/engine/catalog"
	"fitplan-engine/internal/plan"
)

type Builder struct {
	catalog *catalog.Catalog
	log     logger.Logger

	// rngMu serializes rng access; builds run on concurrent request
	// goroutines and rand.Rand is not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// New creates a builder. The rand source is caller-owned so tests can
// seed it; pass rand.New(rand.NewSource(time.Now().UnixNano())) in
// production wiring.
func New(cat *catalog.Catalog, log logger.Logger, rng *rand.Rand) *Builder {
	return &Builder{catalog: cat, log: log, rng: rng}
}

func goalLabel(goal plan.Goal) string {
	switch goal {
	case plan.GoalWeightLoss:
		return "Weight Loss"
	case plan.GoalMuscleGain:
		return "Muscle Gain"
	default:
		return "Maintenance"
	}
}

func planName(flavor plan.PlanFlavor, days int, goal plan.Goal) string {
	kind := "Workout"
	if flavor == plan.FlavorMeal {
		kind = "Meal"
	}
	return fmt.Sprintf("%d-Day %s %s Plan", days, goalLabel(goal), kind)
}

func newPlan(flavor plan.PlanFlavor, days []plan.PlanDay, profile plan.BiometricProfile, metrics plan.DerivedMetrics, description string) *plan.GeneratedPlan {
	return &plan.GeneratedPlan{
		Name:        planName(flavor, len(days), profile.Goal),
		Description: description,
		Flavor:      flavor,
		Days:        days,
		Metrics:     metrics,
		Source:      plan.SourceFallback,
		CreatedAt:   time.Now().UTC(),
	}
}
