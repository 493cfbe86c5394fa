package validate

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFile_JSON_Auto_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewStockEventValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	if err := os.WriteFile(path, []byte(validEventJSON("prod-1", 5)), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	if strings.TrimSpace(out.String()) == "" {
		t.Fatalf("expected non-empty output")
	}
}

func TestValidateFile_JSONL_Auto_Mixed(t *testing.T) {
	ctx := context.Background()
	validator := NewStockEventValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "feed.jsonl")
	content := validEventJSON("prod-1", 5) + "\n" +
		`{"product_id":"","new_stock":1}` + "\n" + // invalid: пустой product_id
		validEventJSON("prod-3", 0) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	summary, err := ValidateFile(ctx, validator, path, FormatAuto, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %s", summary)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
}

func TestValidateFile_MissingFile(t *testing.T) {
	ctx := context.Background()
	validator := NewStockEventValidator()

	var out bytes.Buffer
	if _, err := ValidateFile(ctx, validator, "/no/such/file.json", FormatAuto, &out); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidateFile_UnsupportedFormat(t *testing.T) {
	ctx := context.Background()
	validator := NewStockEventValidator()

	dir := t.TempDir()
	path := filepath.Join(dir, "one.json")
	if err := os.WriteFile(path, []byte(validEventJSON("prod-1", 1)), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	var out bytes.Buffer
	if _, err := ValidateFile(ctx, validator, path, InputFormat("xml"), &out); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
