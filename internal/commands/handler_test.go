package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct {
	Name string
}

func (testMessage) Type() string { return "tags.test" }

func (m testMessage) Validate() error {
	errs := validation.Errors{}
	if m.Name == "" {
		errs["name"] = validation.NewError("tags.test.name_required", "name is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func TestHandlerExecutesWrappedFunction(t *testing.T) {
	var got testMessage
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		got = msg
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{Name: "ok"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Name != "ok" {
		t.Fatalf("expected message delivered, got %#v", got)
	}
}

func TestHandlerRejectsInvalidMessage(t *testing.T) {
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		t.Fatal("exec must not run for invalid messages")
		return nil
	})

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestHandlerCategorisesExecutionFailure(t *testing.T) {
	boom := errors.New("boom")
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		return boom
	})

	err := h.Execute(context.Background(), testMessage{Name: "ok"})
	if err == nil {
		t.Fatal("expected execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerHonoursCancelledContext(t *testing.T) {
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Execute(ctx, testMessage{Name: "ok"})
	if err == nil {
		t.Fatal("expected context error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerErrorsAreBuildScoped(t *testing.T) {
	boom := errors.New("boom")
	failing := NewHandler(func(ctx context.Context, msg testMessage) error {
		return boom
	})

	err := failing.Execute(context.Background(), testMessage{Name: "ok"})
	if err == nil {
		t.Fatal("expected execution error")
	}
	if !strings.Contains(err.Error(), "tags build failed") {
		t.Fatalf("expected build-scoped failure message, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error reachable, got %v", err)
	}

	err = failing.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "tags build rejected an invalid message") {
		t.Fatalf("expected build-scoped validation message, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = failing.Execute(ctx, testMessage{Name: "ok"})
	if err == nil {
		t.Fatal("expected context error")
	}
	if !strings.Contains(err.Error(), "tags build cancelled") {
		t.Fatalf("expected build-scoped cancellation message, got %v", err)
	}
}

func TestHandlerNilContextDefaults(t *testing.T) {
	ran := false
	h := NewHandler(func(ctx context.Context, msg testMessage) error {
		if ctx == nil {
			t.Fatal("expected non-nil context")
		}
		ran = true
		return nil
	})

	//nolint:staticcheck // exercising the nil-context guard on purpose
	if err := h.Execute(nil, testMessage{Name: "ok"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !ran {
		t.Fatal("expected exec to run")
	}
}
