package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetType(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorType
	}{
		{NotFoundf("aircraft %s", "x"), ErrorTypeNotFound},
		{Validationf("bad"), ErrorTypeValidation},
		{Conflictf("dup"), ErrorTypeConflict},
		{InsufficientFundsf("need %d", 5), ErrorTypeInsufficientFunds},
		{fmt.Errorf("wrapped: %w", Conflictf("dup")), ErrorTypeConflict},
		{errors.New("plain"), ErrorTypeInternal},
	}
	for _, tc := range cases {
		if got := GetType(tc.err); got != tc.want {
			t.Errorf("GetType(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}

func TestWrapInternalUnwraps(t *testing.T) {
	base := errors.New("disk full")
	err := WrapInternal("save snapshot", base)
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to match base")
	}
	if err.Error() != "save snapshot: disk full" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
