package util

import (
	"errors"
	"strings"
	"testing"
)

func TestDependencyError(t *testing.T) {
	err := NewDependencyError("device-type ex4300", "manufacturer", "Juniper")

	if !errors.Is(err, ErrDependencyMissing) {
		t.Error("DependencyError should unwrap to ErrDependencyMissing")
	}
	want := "device-type ex4300 requires manufacturer 'Juniper' to exist"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var depErr *DependencyError
	if !errors.As(err, &depErr) {
		t.Fatal("errors.As should match *DependencyError")
	}
	if depErr.DependsOn != "Juniper" {
		t.Errorf("DependsOn = %q, want %q", depErr.DependsOn, "Juniper")
	}
}

func TestValidationError_Single(t *testing.T) {
	err := NewValidationError("device name is required")

	if !errors.Is(err, ErrValidationFailed) {
		t.Error("ValidationError should unwrap to ErrValidationFailed")
	}
	if err.Error() != "validation failed: device name is required" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestValidationError_Multiple(t *testing.T) {
	err := NewValidationError("device name is required", "site is required")

	msg := err.Error()
	if !strings.Contains(msg, "device name is required") || !strings.Contains(msg, "site is required") {
		t.Errorf("Error() should list all failures, got %q", msg)
	}
}

func TestValidationBuilder(t *testing.T) {
	var v ValidationBuilder
	v.Require("leaf1", "name is required")
	v.Require("", "site is required")
	v.Add(true, "should not appear")

	if !v.HasErrors() {
		t.Fatal("HasErrors() = false, want true")
	}
	err := v.Build()
	if err == nil {
		t.Fatal("Build() = nil, want error")
	}
	if !errors.Is(err, ErrValidationFailed) {
		t.Error("built error should unwrap to ErrValidationFailed")
	}
	if strings.Contains(err.Error(), "should not appear") {
		t.Error("satisfied condition must not add an error")
	}
	if !strings.Contains(err.Error(), "site is required") {
		t.Errorf("missing expected message, got %q", err.Error())
	}
}

func TestValidationBuilder_Empty(t *testing.T) {
	var v ValidationBuilder
	if v.HasErrors() {
		t.Error("empty builder should have no errors")
	}
	if err := v.Build(); err != nil {
		t.Errorf("Build() on empty builder = %v, want nil", err)
	}
}
