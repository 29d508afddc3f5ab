/*
Package dischema validates nested, dynamically typed data (maps, lists and
scalars, as produced by JSON or YAML decoders) against a declarative schema.

A schema is itself plain data: a mapping from field name to a field spec that
declares the expected type, whether the field is required, and constraints
such as lengths, numeric bounds, character sets, allowed values and nested
schemas. Checking never stops at the first problem unless asked to; every
failure is reported as a *schema.ValidationError with a kind and the path of
the offending field (e.g. users[0].address.city).

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/dischema"
	)

	func main() {
		v, err := dischema.New(map[string]any{
			"name": map[string]any{"type": "string", "required": true, "max-length": 5},
			"age":  map[string]any{"type": "integer", "required": false, "default-value": 0},
		})
		if err != nil {
			log.Fatal(err)
		}

		res := v.Check(map[string]any{"name": "abcdef"})
		for _, e := range res.Errors {
			fmt.Println(e.Kind, e.Path, e)
		}
	}

Go callers that prefer typed construction build a *schema.Schema directly and
use package validator. Package observability exports check metrics to
Prometheus.
*/
package dischema
