// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `
#TestConfig: {
	name:    string
	count:   int
	enabled: bool
	note?:   string
}
`

type testConfig struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Enabled bool   `json:"enabled"`
	Note    string `json:"note,omitempty"`
}

func TestParseAndDecode(t *testing.T) {
	data := []byte(`
name:    "widgets"
count:   3
enabled: true
`)
	result, err := ParseAndDecodeString[testConfig](testSchema, data, "#TestConfig")
	if err != nil {
		t.Fatalf("ParseAndDecodeString() error = %v", err)
	}
	if result.Value.Name != "widgets" || result.Value.Count != 3 || !result.Value.Enabled {
		t.Errorf("decoded value = %+v", result.Value)
	}
}

func TestParseAndDecode_SchemaViolation(t *testing.T) {
	data := []byte(`
name:    "widgets"
count:   "not a number"
enabled: true
`)
	_, err := ParseAndDecodeString[testConfig](testSchema, data, "#TestConfig", WithFilename("test.cue"))
	if err == nil {
		t.Fatal("ParseAndDecodeString() should fail on type mismatch")
	}
	if !strings.Contains(err.Error(), "test.cue") {
		t.Errorf("error should name the file: %v", err)
	}
}

func TestParseAndDecode_NonConcrete(t *testing.T) {
	data := []byte(`
name:    "widgets"
enabled: true
`)
	// count is missing; concrete validation must fail, relaxed must pass.
	if _, err := ParseAndDecodeString[testConfig](testSchema, data, "#TestConfig"); err == nil {
		t.Error("concrete parse should fail on missing field")
	}
	if _, err := ParseAndDecodeString[testConfig](testSchema, data, "#TestConfig", WithConcrete(false)); err != nil {
		t.Errorf("non-concrete parse error = %v", err)
	}
}

func TestParseAndDecode_FileSizeLimit(t *testing.T) {
	data := []byte(`name: "x", count: 1, enabled: true`)
	_, err := ParseAndDecodeString[testConfig](testSchema, data, "#TestConfig", WithMaxFileSize(4))
	if err == nil || !strings.Contains(err.Error(), "exceeds maximum") {
		t.Errorf("expected file size error, got %v", err)
	}
}

func TestCheckFileSize(t *testing.T) {
	if err := CheckFileSize(make([]byte, 10), 10, "f"); err != nil {
		t.Errorf("CheckFileSize() at limit should pass: %v", err)
	}
	if err := CheckFileSize(make([]byte, 11), 10, "f"); err == nil {
		t.Error("CheckFileSize() over limit should fail")
	}
}

func TestFormatError_NonCUE(t *testing.T) {
	err := FormatError(errors.New("boom"), "config.cue")
	if err == nil || !strings.Contains(err.Error(), "config.cue") {
		t.Errorf("FormatError() = %v", err)
	}
}

func TestValidationError_Error(t *testing.T) {
	e := &ValidationError{FilePath: "config.cue", CUEPath: "ui.verbose", Message: "expected bool"}
	want := "config.cue: ui.verbose: expected bool"
	if e.Error() != want {
		t.Errorf("Error() = %q, want %q", e.Error(), want)
	}
}
