//go:build ignore

// This script exports the built-in catalog as a JSON file, as a starting
// point for a custom CATALOG_PATH file.
// Run with: go run scripts/export_catalog.go [path]
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/guttosm/bundle-service/internal/catalog"
)

func main() {
	path := "catalog.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := json.MarshalIndent(catalog.DefaultProducts, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding catalog: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d products to %s\n", len(catalog.DefaultProducts), path)
	fmt.Println()
	fmt.Println("Point the service at it with:")
	fmt.Printf("CATALOG_PATH=%s\n", path)
}
