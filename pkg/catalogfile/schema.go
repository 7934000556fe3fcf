// pkg/catalogfile/schema.go
package catalogfile

import "fitplan-engine/internal/plan"

// File is an on-disk catalog extension. Entries are merged on top of
// the built-in catalog at startup, so a deployment can widen the
// exercise and meal pools without a rebuild.
type File struct {
	Version     string          `json:"version"`
	LastUpdated string          `json:"lastUpdated"`
	Exercises   []plan.Exercise `json:"exercises,omitempty"`
	Meals       []plan.MealItem `json:"meals,omitempty"`
}
