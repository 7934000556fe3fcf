// pkg/catalogfile/catalogfile.go

// Package catalogfile loads JSON catalog extension files and merges
// them into the exercise and meal catalog.
package catalogfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"fitplan-engine/internal/engine/catalog"
	"fitplan-engine/internal/plan"
)

// Load reads and decodes a catalog extension file. The decoded file is
// not validated; call Validate before applying it.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog file %s is not valid JSON: %w", path, err)
	}
	return &f, nil
}

// Validate checks every entry against the catalog enums and reports
// all problems at once.
func (f *File) Validate() error {
	var problems []string

	focusAreas := enumSet(plan.ValidFocusAreas())
	levels := enumSet(plan.ValidFitnessLevels())
	mealTypes := enumSet(plan.ValidMealTypes())

	for i, e := range f.Exercises {
		where := fmt.Sprintf("exercises[%d]", i)
		if e.Name == "" {
			problems = append(problems, where+": name is required")
		}
		if !focusAreas[string(e.Focus)] {
			problems = append(problems, fmt.Sprintf("%s: unknown focus %q", where, e.Focus))
		}
		if !levels[string(e.Level)] {
			problems = append(problems, fmt.Sprintf("%s: unknown level %q", where, e.Level))
		}
		if e.Sets < 1 {
			problems = append(problems, where+": sets must be at least 1")
		}
		if e.Reps == "" {
			problems = append(problems, where+": reps is required")
		}
	}

	for i, m := range f.Meals {
		where := fmt.Sprintf("meals[%d]", i)
		if m.Name == "" {
			problems = append(problems, where+": name is required")
		}
		if !mealTypes[string(m.Type)] {
			problems = append(problems, fmt.Sprintf("%s: unknown meal type %q", where, m.Type))
		}
		if m.Calories <= 0 {
			problems = append(problems, where+": calories must be positive")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid catalog file: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ApplyTo merges the file's entries into cat. Returns the number of
// exercises and meals added.
func (f *File) ApplyTo(cat *catalog.Catalog) (exercises, meals int) {
	for _, e := range f.Exercises {
		cat.AddExercise(e)
	}
	for _, m := range f.Meals {
		cat.AddMeal(m)
	}
	return len(f.Exercises), len(f.Meals)
}

func enumSet[T ~string](values []T) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[string(v)] = true
	}
	return set
}
