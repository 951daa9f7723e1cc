package impute

import (
	"testing"

	"github.com/YuminosukeSato/goimpute/pkg/errors"
)

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Strategy
		wantErr bool
	}{
		{name: "mean", input: "mean", want: Mean, wantErr: false},
		{name: "median", input: "median", want: Median, wantErr: false},
		{name: "mode", input: "mode", want: Mode, wantErr: false},
		{name: "unknown name", input: "average", wantErr: true},
		{name: "case sensitive", input: "Mean", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrategy(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStrategy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var strategyErr *errors.UnknownStrategyError
				if !errors.As(err, &strategyErr) {
					t.Errorf("expected UnknownStrategyError, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseStrategy() = %v, want %v", got, tt.want)
			}
		})
	}
}
