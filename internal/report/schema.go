// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("report.schema.json", bytes.NewReader(schemaJSON)); err != nil {
			compileErr = fmt.Errorf("add schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile("report.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compile schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks serialized report JSON against the report schema
func Validate(data []byte) error {
	s, err := schema()
	if err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal report: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("report does not match schema: %w", err)
	}
	return nil
}

// Schema returns the embedded JSON schema document
func Schema() []byte {
	return append([]byte(nil), schemaJSON...)
}
