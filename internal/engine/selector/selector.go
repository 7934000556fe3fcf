// internal/engine/selector/selector.go
package selector

import (
	"math"
	"math/rand"

	"fitplan-engine/internal/common/logger"
	"fitplan-engine/internal/common/metrics"
)

// Candidate is any catalog item with a name and an attribute vector.
// Exercises and meals both satisfy it, so one scoring implementation
// serves both domains.
type Candidate interface {
	ItemName() string
	Attributes() map[string]float64
}

// Vector is a target or weight table keyed by attribute name.
type Vector map[string]float64

// DefaultWeights is the fixed per-attribute weight table. Protein is
// weighted above the other macros, fiber below.
var DefaultWeights = Vector{
	"calories": 1.0,
	"protein":  1.5,
	"carbs":    1.0,
	"fats":     1.0,
	"fiber":    0.5,
	"sets":     1.0,
	"rest":     0.5,
}

// tolerance widens the scoring band around each target attribute.
const tolerance = 0.2

// Score computes the weighted closeness of an attribute vector to a
// target. Each attribute contributes weight * max(0, 1 - |v-t| /
// (0.2*t)); a zero target scores full weight only on an exact zero.
func Score(attrs, target, weights Vector) float64 {
	total := 0.0
	for name, t := range target {
		w, ok := weights[name]
		if !ok {
			w = 1.0
		}
		v := attrs[name]

		if t == 0 {
			if v == 0 {
				total += w
			}
			continue
		}

		closeness := 1 - math.Abs(v-t)/(tolerance*t)
		if closeness > 0 {
			total += w * closeness
		}
	}
	return total
}

// Select picks the best-scoring candidate against target, skipping
// excluded names. When exclusion empties the pool the full catalog is
// reconsidered: repetition is a logged degradation, not an error.
// Ties resolve to the first occurrence in catalog order, keeping
// selection deterministic. ok is false only for an empty catalog.
func Select[T Candidate](items []T, target Vector, excluded map[string]bool, weights Vector, log logger.Logger, domain string) (best T, ok bool) {
	if len(items) == 0 {
		return best, false
	}
	if weights == nil {
		weights = DefaultWeights
	}

	pool := make([]T, 0, len(items))
	for _, item := range items {
		if !excluded[item.ItemName()] {
			pool = append(pool, item)
		}
	}

	if len(pool) == 0 {
		if log != nil {
			log.Warn("selection pool exhausted, allowing repeats", map[string]interface{}{
				"domain":      domain,
				"catalogSize": len(items),
				"excluded":    len(excluded),
			})
		}
		metrics.CatalogFallbackPicks.WithLabelValues(domain).Inc()
		pool = items
	}

	bestScore := math.Inf(-1)
	for _, item := range pool {
		if s := Score(item.Attributes(), target, weights); s > bestScore {
			bestScore = s
			best = item
		}
	}
	return best, true
}

// PickRandom draws a random candidate whose name is not excluded,
// falling back to the full catalog under the same repetition policy
// as Select. Used by the workout builder, which fills slots rather
// than chasing a macro target. The caller owns the rand source so
// tests can seed it.
func PickRandom[T Candidate](items []T, excluded map[string]bool, rng *rand.Rand, log logger.Logger, domain string) (picked T, ok bool) {
	if len(items) == 0 {
		return picked, false
	}

	pool := make([]T, 0, len(items))
	for _, item := range items {
		if !excluded[item.ItemName()] {
			pool = append(pool, item)
		}
	}

	if len(pool) == 0 {
		if log != nil {
			log.Warn("selection pool exhausted, allowing repeats", map[string]interface{}{
				"domain":      domain,
				"catalogSize": len(items),
				"excluded":    len(excluded),
			})
		}
		metrics.CatalogFallbackPicks.WithLabelValues(domain).Inc()
		pool = items
	}

	return pool[rng.Intn(len(pool))], true
}
