package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStorageError_WrapsCause(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := &StorageError{Op: "create conversation", Err: cause}

	if !strings.Contains(err.Error(), "create conversation") {
		t.Errorf("Expected message to name the operation, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("Expected message to embed the cause, got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("Expected errors.Is to find the wrapped cause")
	}

	var storageErr *StorageError
	if !errors.As(fmt.Errorf("handler: %w", err), &storageErr) {
		t.Error("Expected errors.As to unwrap a nested StorageError")
	}
}
