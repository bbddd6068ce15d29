package errors

import (
	"fmt"
	"testing"
)

func TestAppError_Codes(t *testing.T) {
	err := UnknownColumn("Ladder score")
	if got := GetCode(err); got != CodeUnknownColumn {
		t.Fatalf("expected %s, got %s", CodeUnknownColumn, got)
	}
	if !HasCode(err, CodeUnknownColumn) {
		t.Fatal("HasCode should match the constructor's code")
	}
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := FileNotFound("data.csv")
	wrapped := Wrap(inner, "loading dataset")

	if got := GetCode(wrapped); got != CodeFileNotFound {
		t.Fatalf("wrap should keep the inner code, got %s", got)
	}
	if wrapped.Error() != "loading dataset: dataset file not found: data.csv" {
		t.Fatalf("unexpected message: %s", wrapped.Error())
	}
}

func TestWrap_ForeignErrorGetsInternalCode(t *testing.T) {
	wrapped := Wrap(fmt.Errorf("disk on fire"), "reading file")
	if got := GetCode(wrapped); got != CodeInternalError {
		t.Fatalf("expected %s, got %s", CodeInternalError, got)
	}
}

func TestWrap_NilStaysNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Fatal("wrapping nil must return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Fatal("wrapping nil must return nil")
	}
}

func TestGetCode_PlainError(t *testing.T) {
	if got := GetCode(fmt.Errorf("plain")); got != "UNKNOWN" {
		t.Fatalf("expected UNKNOWN, got %s", got)
	}
}
