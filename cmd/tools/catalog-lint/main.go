// cmd/tools/catalog-lint/main.go

// catalog-lint validates a catalog extension file and reports what it
// would add on top of the built-in catalog. Run it in CI before a
// deployment picks the file up.
package main

import (
	"flag"
	"fmt"
	"os"

	"fitplan-engine/internal/engine/catalog"
	"fitplan-engine/pkg/catalogfile"
)

func main() {
	path := flag.String("path", "configs/catalog-extension.json", "Path to the catalog extension file")
	flag.Parse()

	ext, err := catalogfile.Load(*path)
	if err != nil {
		fmt.Printf("Error loading catalog file: %v\n", err)
		os.Exit(1)
	}

	if err := ext.Validate(); err != nil {
		fmt.Printf("Validation failed: %v\n", err)
		os.Exit(1)
	}

	// The merged catalog must still pass the startup check, otherwise
	// the extension is valid on its own but breaks the server.
	cat := catalog.Builtin()
	exercises, meals := ext.ApplyTo(cat)
	if err := cat.Validate(); err != nil {
		fmt.Printf("Merged catalog is unusable: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %s (version %s) adds %d exercises and %d meals\n", *path, ext.Version, exercises, meals)
}
