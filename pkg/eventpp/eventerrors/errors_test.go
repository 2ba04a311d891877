package eventerrors_test

import (
	"errors"
	"testing"

	"github.com/mediabuff/eventpp/pkg/eventpp/eventerrors"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category eventerrors.Category
		expected string
	}{
		{eventerrors.CategoryInvalidHandle, "invalid_handle"},
		{eventerrors.CategoryEmptyQueue, "empty_queue"},
		{eventerrors.CategoryTimeout, "timeout"},
		{eventerrors.CategoryUserCallbackFailure, "user_callback_failure"},
		{eventerrors.Category(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.category.String(); got != tt.expected {
				t.Errorf("Category(%d).String() = %s, want %s", tt.category, got, tt.expected)
			}
		})
	}
}

func TestCategorizedErrorMessage(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		err := eventerrors.UserCallbackFailure(errors.New("boom"), "list:handlers")
		want := "list:handlers: user_callback_failure: boom"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := eventerrors.InvalidHandle("callbacklist.Remove")
		want := "callbacklist.Remove: invalid_handle"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}

func TestCategorizedErrorUnwrap(t *testing.T) {
	inner := errors.New("root cause")
	err := eventerrors.UserCallbackFailure(inner, "ctx")
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped inner error")
	}
}

func TestConstructors(t *testing.T) {
	if got := eventerrors.EmptyQueue("Take").Category; got != eventerrors.CategoryEmptyQueue {
		t.Errorf("EmptyQueue category = %s, want empty_queue", got)
	}
	if got := eventerrors.Timeout("WaitFor").Category; got != eventerrors.CategoryTimeout {
		t.Errorf("Timeout category = %s, want timeout", got)
	}
}
