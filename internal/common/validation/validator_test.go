package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidator_RequireString(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		field   string
		wantErr bool
	}{
		{"valid string", "hello", "name", false},
		{"empty string", "", "name", true},
		{"whitespace only", "   ", "name", true},
		{"valid with spaces", "hello world", "name", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator()
			v.RequireString(tt.value, tt.field)

			hasError := v.HasErrors()
			if hasError != tt.wantErr {
				t.Errorf("RequireString() hasError = %v, wantErr %v", hasError, tt.wantErr)
			}
		})
	}
}

func TestValidator_RequireRange(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		min     int
		max     int
		wantErr bool
	}{
		{"in range", 8080, 1, 65535, false},
		{"at minimum", 1, 1, 65535, false},
		{"at maximum", 65535, 1, 65535, false},
		{"below range", 0, 1, 65535, true},
		{"above range", 70000, 1, 65535, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator()
			v.RequireRange(tt.value, tt.min, tt.max, "port")

			hasError := v.HasErrors()
			if hasError != tt.wantErr {
				t.Errorf("RequireRange() hasError = %v, wantErr %v", hasError, tt.wantErr)
			}
		})
	}
}

func TestValidator_RequireOneOf(t *testing.T) {
	allowed := []string{"debug", "info", "warn", "error"}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"allowed value", "info", false},
		{"another allowed value", "error", false},
		{"disallowed value", "verbose", true},
		{"empty string", "", true},
		{"case sensitive", "INFO", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator()
			v.RequireOneOf(tt.value, allowed, "log level")

			hasError := v.HasErrors()
			if hasError != tt.wantErr {
				t.Errorf("RequireOneOf() hasError = %v, wantErr %v", hasError, tt.wantErr)
			}
		})
	}
}

func TestValidator_Validate(t *testing.T) {
	v := NewValidator()
	v.Validate(func() error { return nil })
	if v.HasErrors() {
		t.Error("Validate() with nil error should not add errors")
	}

	v.Validate(func() error { return errors.New("custom failure") })
	if !v.HasErrors() {
		t.Error("Validate() with error should add errors")
	}
	if got := v.Error().Error(); got != "custom failure" {
		t.Errorf("Error() = %q, want %q", got, "custom failure")
	}
}

func TestValidator_ValidateIf(t *testing.T) {
	fail := func() error { return errors.New("conditional failure") }

	v := NewValidator()
	v.ValidateIf(false, fail)
	if v.HasErrors() {
		t.Error("ValidateIf(false) should not run the validation")
	}

	v.ValidateIf(true, fail)
	if !v.HasErrors() {
		t.Error("ValidateIf(true) should run the validation")
	}
}

func TestValidator_Chaining(t *testing.T) {
	v := NewValidator().
		RequireString("", "secret").
		RequireRange(0, 1, 65535, "port").
		RequireOneOf("nope", []string{"debug", "info"}, "log level")

	if got := len(v.Errors()); got != 3 {
		t.Errorf("Errors() returned %d errors, want 3", got)
	}
}

func TestValidator_Error(t *testing.T) {
	t.Run("no errors returns nil", func(t *testing.T) {
		v := NewValidator()
		if err := v.Error(); err != nil {
			t.Errorf("Error() = %v, want nil", err)
		}
	})

	t.Run("single error returned as-is", func(t *testing.T) {
		v := NewValidator()
		v.RequireString("", "secret")

		err := v.Error()
		if err == nil {
			t.Fatal("Error() = nil, want error")
		}
		if got := err.Error(); got != "secret is required" {
			t.Errorf("Error() = %q, want %q", got, "secret is required")
		}
	})

	t.Run("multiple errors combined", func(t *testing.T) {
		v := NewValidator()
		v.RequireString("", "secret")
		v.RequireRange(0, 1, 65535, "port")

		err := v.Error()
		if err == nil {
			t.Fatal("Error() = nil, want error")
		}
		msg := err.Error()
		if !strings.HasPrefix(msg, "validation failed: ") {
			t.Errorf("Error() = %q, want validation failed prefix", msg)
		}
		if !strings.Contains(msg, "secret is required") || !strings.Contains(msg, "port must be between") {
			t.Errorf("Error() = %q, missing combined messages", msg)
		}
	})
}

func TestValidator_Prefix(t *testing.T) {
	v := NewValidatorWithPrefix("server")
	v.RequireString("", "port")

	err := v.Error()
	if err == nil {
		t.Fatal("Error() = nil, want error")
	}
	if got := err.Error(); got != "server: port is required" {
		t.Errorf("Error() = %q, want %q", got, "server: port is required")
	}
}
