package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "empty data",
			err:      fmt.Errorf("test error"),
			wantMsg:  "goimpute: Fit: empty data: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Transform",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "goimpute: Transform: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ModelError型にキャスト可能か確認
			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("SimpleImputer", "Transform")

	want := "goimpute: SimpleImputer: this model is not fitted yet. Call Fit() before using Transform()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var notFitted *NotFittedError
	if !As(err, &notFitted) {
		t.Fatal("Error should be castable to *NotFittedError")
	}
	if notFitted.ModelName != "SimpleImputer" || notFitted.Method != "Transform" {
		t.Errorf("fields = %v/%v, want SimpleImputer/Transform", notFitted.ModelName, notFitted.Method)
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("SimpleImputer.Transform", 2, 3, 1)

	want := "goimpute: SimpleImputer.Transform: dimension mismatch on axis 1 (features). Expected 2, got 3"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestNewUnknownStrategyError(t *testing.T) {
	err := NewUnknownStrategyError("knn", []string{"mean", "median", "mode"})

	var strategyErr *UnknownStrategyError
	if !As(err, &strategyErr) {
		t.Fatal("Error should be castable to *UnknownStrategyError")
	}
	if !strings.Contains(err.Error(), `"knn"`) {
		t.Errorf("Error() = %v, want mention of the unknown name", err.Error())
	}
	if !strings.Contains(err.Error(), "mean") {
		t.Errorf("Error() = %v, want list of valid strategies", err.Error())
	}
}

func TestNewUnsupportedAxisError(t *testing.T) {
	err := NewUnsupportedAxisError("NewSimpleImputer", 1)

	want := "goimpute: NewSimpleImputer: axis=1 is not supported. Only column-wise operation (axis=0) is implemented"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestNewEmptyColumnError(t *testing.T) {
	err := NewEmptyColumnError("SimpleImputer.Fit", 3, "median")

	var emptyCol *EmptyColumnError
	if !As(err, &emptyCol) {
		t.Fatal("Error should be castable to *EmptyColumnError")
	}
	if emptyCol.Column != 3 || emptyCol.Strategy != "median" {
		t.Errorf("fields = %d/%s, want 3/median", emptyCol.Column, emptyCol.Strategy)
	}
}

func TestWarningHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	warning := NewDataConversionWarning("string", "float64", "test")
	Warn(warning)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}
	var conv *DataConversionWarning
	if !As(captured, &conv) {
		t.Errorf("captured warning = %v, want *DataConversionWarning", captured)
	}
}
