package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorError(t *testing.T) {
	e := Conflict(CodeDeleteBlocked, "deletion blocked")
	if got := e.Error(); got != "DELETE_BLOCKED: deletion blocked" {
		t.Fatalf("unexpected error string: %q", got)
	}

	wrapped := Wrap(errors.New("boom"), CodeStoreFailure, "cascade step failed", http.StatusInternalServerError)
	if got := wrapped.Error(); got != "STORE_FAILURE: cascade step failed: boom" {
		t.Fatalf("unexpected wrapped error string: %q", got)
	}
}

func TestIsAppErrorThroughWrapping(t *testing.T) {
	base := NotFound(CodeSiteNotFound, "site missing")
	err := fmt.Errorf("preview site: %w", base)

	appErr, ok := IsAppError(err)
	if !ok {
		t.Fatalf("expected AppError through wrap chain")
	}
	if appErr.Code != CodeSiteNotFound {
		t.Fatalf("code mismatch: got %s", appErr.Code)
	}
	if appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("status mismatch: got %d", appErr.HTTPStatus)
	}
}

func TestIsCode(t *testing.T) {
	err := Conflict(CodeHasDependents, "has dependents").
		WithParams(map[string]interface{}{"total": 3})

	if !IsCode(err, CodeHasDependents) {
		t.Fatalf("expected IsCode to match %s", CodeHasDependents)
	}
	if IsCode(err, CodeDeleteBlocked) {
		t.Fatalf("IsCode matched wrong code")
	}
	if IsCode(errors.New("plain"), CodeHasDependents) {
		t.Fatalf("IsCode matched non-AppError")
	}
}

func TestWithParamsOnNil(t *testing.T) {
	var e *AppError
	if got := e.WithParams(map[string]interface{}{"k": "v"}); got != nil {
		t.Fatalf("expected nil receiver passthrough")
	}
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("db down")
	e := Wrap(inner, CodeStoreFailure, "store failure", http.StatusInternalServerError)
	if !errors.Is(e, inner) {
		t.Fatalf("expected errors.Is to reach wrapped error")
	}
}
