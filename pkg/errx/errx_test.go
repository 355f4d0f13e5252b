package errx

import (
	"errors"
	"net/http"
	"testing"
)

func TestRegistryQualifiesCodes(t *testing.T) {
	r := NewRegistry("TEST")
	code := r.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "thing not found")

	if code != "TEST.NOT_FOUND" {
		t.Fatalf("code = %q, want TEST.NOT_FOUND", code)
	}

	e := r.New(code)
	if e.HTTPStatus != http.StatusNotFound || e.Message != "thing not found" {
		t.Fatalf("New() = %+v, definition not applied", e)
	}
	if !e.IsType(TypeNotFound) {
		t.Error("IsType(TypeNotFound) = false")
	}
}

func TestUnregisteredCode(t *testing.T) {
	r := NewRegistry("TEST")

	e := r.New("TEST.NEVER_REGISTERED")
	if e.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("HTTPStatus = %d, want 500 for unregistered code", e.HTTPStatus)
	}
}

func TestNewWithCauseUnwraps(t *testing.T) {
	r := NewRegistry("TEST")
	code := r.Register("EXTERNAL", TypeExternal, http.StatusBadGateway, "backend failed")

	cause := errors.New("connection refused")
	e := r.NewWithCause(code, cause)

	if !errors.Is(e, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
}

func TestWithDetailAndMessage(t *testing.T) {
	r := NewRegistry("TEST")
	code := r.Register("INVALID", TypeValidation, http.StatusBadRequest, "invalid input")

	e := r.New(code).WithDetail("field", "email").WithMessage("email is malformed")

	if e.Details["field"] != "email" {
		t.Errorf("Details = %v", e.Details)
	}
	if e.Message != "email is malformed" {
		t.Errorf("Message = %q, want override", e.Message)
	}

	resp := e.ToHTTPResponse()
	if resp["message"] != "email is malformed" || resp["code"] != Code("TEST.INVALID") {
		t.Errorf("ToHTTPResponse() = %v", resp)
	}
	if _, ok := resp["details"]; !ok {
		t.Error("details missing from HTTP response")
	}
}

func TestWrapPassesThroughExisting(t *testing.T) {
	r := NewRegistry("TEST")
	code := r.Register("BUSY", TypeBusiness, http.StatusUnprocessableEntity, "busy")
	original := r.New(code)

	wrapped := Wrap(original, "ignored", TypeInternal)
	if wrapped != original {
		t.Error("Wrap must not re-wrap an *Error")
	}

	plain := Wrap(errors.New("boom"), "wrapped it", TypeInternal)
	if plain.HTTPStatus != http.StatusInternalServerError || plain.Message != "wrapped it" {
		t.Errorf("Wrap() = %+v", plain)
	}
}

func TestAsError(t *testing.T) {
	r := NewRegistry("TEST")
	code := r.Register("X", TypeInternal, http.StatusInternalServerError, "x")

	if _, ok := AsError(r.New(code)); !ok {
		t.Error("AsError should recognize *Error")
	}
	if _, ok := AsError(errors.New("plain")); ok {
		t.Error("AsError should reject a plain error")
	}
}
