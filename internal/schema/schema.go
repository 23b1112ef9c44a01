// SPDX-License-Identifier: Apache-2.0

// Package schema checks analysis output against the embedded CUE contract.
package schema

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed analysis.cue
var source []byte

// Definitions that can be validated against.
const (
	Analysis = "#Analysis"
	Record   = "#Record"
)

// ErrInvalidResult is returned when a value does not satisfy the contract.
var ErrInvalidResult = errors.New("result does not satisfy the output contract")

// Source returns the CUE text of the contract.
func Source() string {
	return string(source)
}

// Validate marshals v to JSON and checks it against definition. A fresh CUE
// context is used per call since cue.Context is not safe for concurrent use.
func Validate(definition string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return ValidateJSON(definition, data)
}

// ValidateJSON checks raw JSON against definition.
func ValidateJSON(definition string, data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileBytes(source, cue.Filename("analysis.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath(definition))
	if !def.Exists() {
		return fmt.Errorf("schema has no definition %s", definition)
	}

	value := ctx.CompileBytes(data, cue.Filename("result.json"))
	if err := value.Err(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidResult, cueerrors.Details(err, nil))
	}

	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidResult, cueerrors.Details(err, nil))
	}
	return nil
}
