package apperr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelMatchesByKind(t *testing.T) {
	err := New(KindLanguageMissing, "two-sum: brainfuck")
	if !errors.Is(err, ErrLanguageMissing) {
		t.Fatalf("expected language missing to match sentinel")
	}
	if errors.Is(err, ErrFilenameFormat) {
		t.Fatalf("expected different kinds not to match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("scaffold: %w", Wrap(KindStorage, cause, "write"))
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be reachable")
	}
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected storage kind to be reachable through wrapping")
	}
	if KindOf(err) != KindStorage {
		t.Fatalf("expected KindStorage, got %v", KindOf(err))
	}
	if Wrap(KindStorage, nil, "noop") != nil {
		t.Fatalf("expected nil when wrapping nil")
	}
}

func TestStatusMessage(t *testing.T) {
	err := Status(403, "forbidden")
	if got := err.Error(); !strings.Contains(got, "403") || !strings.Contains(got, "forbidden") {
		t.Fatalf("unexpected status message %q", got)
	}
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Fatalf("expected unknown kind for plain errors")
	}
}
