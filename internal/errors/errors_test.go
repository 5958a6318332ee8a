package errors

import (
	"testing"
)

func TestBuilderSetsCategoryAndContext(t *testing.T) {
	t.Parallel()

	err := Newf("table row missing for day %d", 42).
		Component("ephemeris").
		Category(CategoryEphemerisTable).
		Context("day_offset", 42).
		Build()

	if err.Component != "ephemeris" {
		t.Errorf("expected component ephemeris, got %q", err.Component)
	}
	if err.Category != CategoryEphemerisTable {
		t.Errorf("expected category %q, got %q", CategoryEphemerisTable, err.Category)
	}
	if err.GetContext()["day_offset"] != 42 {
		t.Error("context value not preserved")
	}
}

func TestBuildDefaultsToGenericCategory(t *testing.T) {
	t.Parallel()

	err := New(NewStd("plain")).Build()
	if err.Category != CategoryGeneric {
		t.Errorf("expected generic category, got %q", err.Category)
	}
}

func TestIsMatchesOnCategory(t *testing.T) {
	t.Parallel()

	a := Newf("a").Category(CategorySolver).Build()
	b := Newf("b").Category(CategorySolver).Build()
	if !Is(a, b) {
		t.Error("errors with the same category should match")
	}
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	err := NotFoundError("profile", "abc-123")
	if !IsNotFound(err) {
		t.Error("NotFoundError should satisfy IsNotFound")
	}
	if IsNotFound(NewStd("other")) {
		t.Error("plain error should not satisfy IsNotFound")
	}
}

func TestGetContextReturnsCopy(t *testing.T) {
	t.Parallel()

	err := Newf("x").Context("k", "v").Build()
	ctx := err.GetContext()
	ctx["k"] = "mutated"
	if err.Context["k"] != "v" {
		t.Error("GetContext must return a copy")
	}
}
