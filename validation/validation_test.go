package validation

import (
	"errors"
	"strings"
	"testing"
)

type testSettings struct {
	Name  string `yaml:"name" validate:"required"`
	Count int    `yaml:"count" validate:"gte=0,lte=10"`
	Site  string `yaml:"site" validate:"omitempty,http_url"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(testSettings{Name: "x", Count: 3, Site: "https://example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_CollectsFieldErrors(t *testing.T) {
	err := Struct(testSettings{Count: 99, Site: "not a url"})
	if err == nil {
		t.Fatal("expected error")
	}
	fields := FieldsOf(err)
	if len(fields) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(fields), err)
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("message should name the yaml field: %q", err.Error())
	}
}

func TestStruct_OmitEmpty(t *testing.T) {
	if err := Struct(testSettings{Name: "x"}); err != nil {
		t.Errorf("empty optional field should pass: %v", err)
	}
}

func TestValidator_Manual(t *testing.T) {
	v := New()
	if v.HasErrors() {
		t.Error("fresh validator should have no errors")
	}
	v.AddError("server_url", "must not include a path")
	v.Check("other", nil)
	v.Check("count", errors.New("too large"))

	err := v.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	fields := FieldsOf(err)
	if len(fields) != 2 {
		t.Fatalf("expected 2 field errors, got %v", fields)
	}
}

func TestValidator_NoErrors(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("PrefetchCount"); got != "prefetch_count" {
		t.Errorf("got %q", got)
	}
}
