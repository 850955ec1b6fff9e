package tool

import (
	"errors"
	"testing"
)

func TestRequireField(t *testing.T) {
	if err := RequireField("query", "paris"); err != nil {
		t.Errorf("non-empty value: %v", err)
	}
	if err := RequireField("query", ""); err == nil {
		t.Error("empty value: expected error")
	}
}

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		value   int
		wantErr bool
	}{
		{1, false},
		{20, false},
		{0, true},
		{-5, true},
	}
	for _, tt := range tests {
		err := ValidatePositive("num_results", tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePositive(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestValidateAll(t *testing.T) {
	if err := ValidateAll(nil, nil); err != nil {
		t.Errorf("all nil: %v", err)
	}
	sentinel := errors.New("boom")
	if err := ValidateAll(nil, sentinel, errors.New("later")); !errors.Is(err, sentinel) {
		t.Errorf("expected first error, got %v", err)
	}
}
