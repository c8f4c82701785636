// Command schema-generator writes the widgets.yml JSON schema for editor
// integration:
//
//	go run ./tools/schema-generator -o widgets.schema.json
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/widgets/config"
)

func main() {
	output := flag.String("o", "widgets.schema.json", "output path")
	flag.Parse()

	schemaBytes, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	if dir := filepath.Dir(*output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Error creating schema directory: %v", err)
		}
	}
	if err := os.WriteFile(*output, append(schemaBytes, '\n'), 0o644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Wrote widgets schema to %s", *output)
}
