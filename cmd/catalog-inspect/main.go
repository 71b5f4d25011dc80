// catalog-inspect scans a room template catalog, builds the specification
// database, and prints what a layout generator would see: the themes on
// offer, their maximum footprints, and the variant count per specification.
package main

import (
	"context"
	"log"
	"sort"

	"github.com/joho/godotenv"

	"github.com/dungeonworks/roomforge/internal/catalog"
	"github.com/dungeonworks/roomforge/internal/config"
	"github.com/dungeonworks/roomforge/internal/specdb"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	scanner := catalog.NewFileScanner()
	records, err := scanner.Scan(ctx, cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to scan catalog: %v", err)
	}
	log.Printf("Discovered %d template records in %s", len(records), cfg.Catalog.Path)

	db, err := specdb.New(records)
	if err != nil {
		log.Fatalf("Failed to build specification database: %v", err)
	}

	themes := db.Themes()
	sort.Slice(themes, func(i, j int) bool { return themes[i] < themes[j] })

	for _, theme := range themes {
		maxWidth, err := db.MaxWidth(theme)
		if err != nil {
			log.Fatalf("Failed to query max width: %v", err)
		}
		maxLength, err := db.MaxLength(theme)
		if err != nil {
			log.Fatalf("Failed to query max length: %v", err)
		}
		log.Printf("Theme %-10s max footprint %dx%d", theme, maxWidth, maxLength)
	}

	specs := db.Specifications()
	sort.Slice(specs, func(i, j int) bool {
		if specs[i].Theme != specs[j].Theme {
			return specs[i].Theme < specs[j].Theme
		}
		if specs[i].Width != specs[j].Width {
			return specs[i].Width < specs[j].Width
		}
		return specs[i].Length < specs[j].Length
	})

	for _, spec := range specs {
		locators, err := db.LocatorsFor(spec)
		if err != nil {
			log.Fatalf("Failed to query locators: %v", err)
		}
		log.Printf("  %s %dx%d: %d variant(s)", spec.Theme, spec.Width, spec.Length, len(locators))
	}
}
