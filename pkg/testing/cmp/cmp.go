package cmp

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// CompareErr fails the test unless got wraps an error of want's type that equals want.
func CompareErr(t *testing.T, got error, want error, opts ...cmp.Option) {
	t.Helper()

	if want == nil {
		if got != nil {
			t.Fatalf("expected no error, got %T: %v", got, got)
		}
		return
	}

	if got == nil {
		t.Fatalf("expected %T error, got nil", want)
	}

	wantType := reflect.TypeOf(want)
	target := reflect.New(wantType)
	if !errors.As(got, target.Interface()) {
		t.Fatalf("expected error assignable to %v, got %T: %v", wantType, got, got)
	}

	typedGot := target.Elem().Interface().(error)
	if diff := cmp.Diff(want, typedGot, opts...); diff != "" {
		t.Errorf("error mismatch (-expected +got):\n%s", diff)
	}
}

// CompareOutput fails the test when the written bytes differ, showing a diff of their string forms.
func CompareOutput(t *testing.T, got []byte, want []byte) {
	t.Helper()

	if diff := cmp.Diff(string(want), string(got)); diff != "" {
		t.Errorf("output mismatch (-expected +got):\n%s", diff)
	}
}
