// Command stratumgen compiles a declarative TOML schema of component
// types and managers into Go source wiring a stratum manager graph.
//
// Usage:
//
//	stratumgen -schema world.toml -out world_gen.go
//
// The emitted file declares the component types, registers them in
// declaration order, and constructs the managers with their base wiring.
package main

import (
	"flag"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("stratumgen: ")

	schemaPath := flag.String("schema", "", "path to the TOML schema")
	outPath := flag.String("out", "", "output Go file (stdout if empty)")
	flag.Parse()

	if *schemaPath == "" {
		log.Fatal("missing -schema")
	}

	schema, err := LoadSchema(*schemaPath)
	if err != nil {
		log.Fatal(err)
	}
	src, err := Generate(schema)
	if err != nil {
		log.Fatal(err)
	}

	if *outPath == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outPath, src, 0o644); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *outPath)
}
