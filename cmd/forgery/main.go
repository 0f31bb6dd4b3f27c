// Command forgery generates deterministic fake data from a schema file and
// writes it as JSON or JSON lines. Schemas come from a YAML document, an
// OpenAPI component, or the interactive wizard.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-forgery"
	"github.com/goliatone/go-forgery/pkg/locale"
	pkgopenapi "github.com/goliatone/go-forgery/pkg/openapi"
)

func main() {
	schemaPath := flag.String("schema", "", "YAML schema file")
	openapiPath := flag.String("openapi", "", "OpenAPI document to derive the schema from")
	component := flag.String("component", "", "component schema name inside the OpenAPI document")
	interactive := flag.Bool("interactive", false, "build the schema with interactive prompts")
	n := flag.Int("n", 10, "number of records")
	seed := flag.Uint64("seed", 0, "seed for reproducible output (0 uses a random seed)")
	localeTag := flag.String("locale", string(locale.Default), "locale for locale-aware kinds")
	chunkSize := flag.Int("chunk", forgery.DefaultChunkSize, "chunk size for large batches")
	lines := flag.Bool("jsonl", false, "emit one JSON object per line instead of an array")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	s, err := loadSchema(*schemaPath, *openapiPath, *component, *interactive)
	if err != nil {
		log.Fatalf("load schema: %v", err)
	}
	if len(s) == 0 {
		log.Fatal("schema has no fields")
	}

	loc, err := locale.Parse(*localeTag)
	if err != nil {
		log.Fatalf("parse locale: %v", err)
	}

	src := forgery.NewSource()
	if *seed != 0 {
		src = forgery.NewSeededSource(*seed)
	}

	g := forgery.NewGenerator(
		forgery.WithLocale(loc),
		forgery.WithChunkSize(*chunkSize),
	)
	records, err := g.RecordsChunked(context.Background(), src, *n, s)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer f.Close()
		out = f
	}

	if err := write(out, records, *lines); err != nil {
		log.Fatalf("write output: %v", err)
	}
	if *output != "" {
		fmt.Printf("%d records written to %s\n", len(records), *output)
	}
}

func loadSchema(schemaPath, openapiPath, component string, interactive bool) (forgery.Schema, error) {
	switch {
	case interactive:
		return runWizard()
	case schemaPath != "":
		data, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, err
		}
		return forgery.LoadSchemaYAML(data, nil)
	case openapiPath != "":
		if component == "" {
			return nil, fmt.Errorf("-component is required with -openapi")
		}
		data, err := os.ReadFile(openapiPath)
		if err != nil {
			return nil, err
		}
		return pkgopenapi.SchemaFromData(data, component)
	default:
		return nil, fmt.Errorf("one of -schema, -openapi or -interactive is required")
	}
}

func write(out *os.File, records []forgery.Record, lines bool) error {
	enc := json.NewEncoder(out)
	if !lines {
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}
