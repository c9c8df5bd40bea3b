// Fail-fast assertions for the ringlist tests.
package assert

import (
	"errors"
	"testing"
)

// actual == expected
func Equal[T comparable](t *testing.T, actual T, expected T) {
	t.Helper()
	if actual == expected {
		return
	}
	t.Fatalf("got '%v', wanted '%v'", actual, expected)
}

// Same length, same values, same order
func List[T comparable](t *testing.T, actuals []T, expecteds []T) {
	t.Helper()
	if len(actuals) != len(expecteds) {
		t.Fatalf("got %v, wanted %v", actuals, expecteds)
	}
	for i, actual := range actuals {
		if actual != expecteds[i] {
			t.Fatalf("got %v, wanted %v (differs at %d)", actuals, expecteds, i)
		}
	}
}

// A condition holds
func True(t *testing.T, actual bool) {
	t.Helper()
	if !actual {
		t.Fatal("condition was false")
	}
}

// A condition does not hold
func False(t *testing.T, actual bool) {
	t.Helper()
	if actual {
		t.Fatal("condition was true")
	}
}

// No error
func Nil(t *testing.T, actual error) {
	t.Helper()
	if actual != nil {
		t.Fatalf("unexpected error '%v'", actual)
	}
}

// actual is, or wraps, expected
func Error(t *testing.T, actual error, expected error) {
	t.Helper()
	if !errors.Is(actual, expected) {
		t.Fatalf("got error '%v', wanted '%v'", actual, expected)
	}
}
