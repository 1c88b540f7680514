package models

import (
	"errors"
	"testing"
)

func TestCommandResultFailed(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusOK, false},
		{StatusExit, false},
		{StatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			r := CommandResult{Status: tt.status}
			if tt.status == StatusFailed {
				r.Error = errors.New("boom")
			}
			if got := r.Failed(); got != tt.want {
				t.Errorf("Failed() = %v, want %v", got, tt.want)
			}
		})
	}
}
