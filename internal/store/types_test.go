package store

import (
	"testing"
	"time"
)

func TestRunResultValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunResult)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *RunResult) {}, wantErr: false},
		{name: "empty run id", mutate: func(r *RunResult) { r.RunID = "" }, wantErr: true},
		{name: "empty point", mutate: func(r *RunResult) { r.Point = nil }, wantErr: true},
		{name: "negative iterations", mutate: func(r *RunResult) { r.Iterations = -1 }, wantErr: true},
		{name: "zero timestamp", mutate: func(r *RunResult) { r.Timestamp = time.Time{} }, wantErr: true},
		{name: "missing problem", mutate: func(r *RunResult) { r.Config.Problem = "" }, wantErr: true},
		{name: "missing scheme", mutate: func(r *RunResult) { r.Config.Scheme = "" }, wantErr: true},
		{name: "non-positive max steps", mutate: func(r *RunResult) { r.Config.MaxSteps = 0 }, wantErr: true},
		{name: "dimension mismatch", mutate: func(r *RunResult) { r.Config.Dim = 5 }, wantErr: true},
		{name: "zero iterations ok", mutate: func(r *RunResult) { r.Iterations = 0 }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validResult("run")
			tt.mutate(r)
			err := r.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestToInfo(t *testing.T) {
	r := validResult("run-7")
	info := r.ToInfo()

	if info.RunID != r.RunID {
		t.Errorf("RunID = %q, want %q", info.RunID, r.RunID)
	}
	if info.Problem != r.Config.Problem {
		t.Errorf("Problem = %q, want %q", info.Problem, r.Config.Problem)
	}
	if info.Scheme != r.Config.Scheme {
		t.Errorf("Scheme = %q, want %q", info.Scheme, r.Config.Scheme)
	}
	if info.Cost != r.Cost {
		t.Errorf("Cost = %f, want %f", info.Cost, r.Cost)
	}
}
