package store

import (
	"fmt"
	"time"
)

// RunConfig records how an optimization run was set up. It is persisted with
// the result so runs can be compared and reproduced.
type RunConfig struct {
	Problem    string `json:"problem"`
	Scheme     string `json:"scheme"`
	Dim        int    `json:"dim"`
	MaxSteps   int    `json:"maxSteps"`
	GlobalSeed bool   `json:"globalSeed"`          // whether a swarm search proposed the start point
	SwarmIters int    `json:"swarmIters,omitempty"`
	SwarmPop   int    `json:"swarmPop,omitempty"`
	Seed       int64  `json:"seed,omitempty"` // random seed of the swarm search
}

// RunResult is the persisted outcome of one optimization run.
type RunResult struct {
	// RunID is the unique identifier for this run.
	RunID string `json:"runId"`

	// Point is the final iterate in ambient coordinates.
	Point []float64 `json:"point"`

	// Cost is the cost at Point; InitialCost the cost at the start point.
	Cost        float64 `json:"cost"`
	InitialCost float64 `json:"initialCost"`

	// Iterations is the number of successful steps performed.
	Iterations int `json:"iterations"`

	// Stationary reports whether the run stopped because the line search
	// found no improving step (as opposed to hitting the iteration bound).
	Stationary bool `json:"stationary"`

	// Timestamp records when the run finished.
	Timestamp time.Time `json:"timestamp"`

	// Config holds the run configuration.
	Config RunConfig `json:"config"`
}

// Validate checks that the result is complete enough to persist.
func (r *RunResult) Validate() error {
	if r.RunID == "" {
		return &ValidationError{Field: "RunID", Reason: "cannot be empty"}
	}
	if len(r.Point) == 0 {
		return &ValidationError{Field: "Point", Reason: "cannot be empty"}
	}
	if r.Iterations < 0 {
		return &ValidationError{Field: "Iterations", Reason: "cannot be negative"}
	}
	if r.Timestamp.IsZero() {
		return &ValidationError{Field: "Timestamp", Reason: "cannot be zero"}
	}
	if r.Config.Problem == "" {
		return &ValidationError{Field: "Config.Problem", Reason: "cannot be empty"}
	}
	if r.Config.Scheme == "" {
		return &ValidationError{Field: "Config.Scheme", Reason: "cannot be empty"}
	}
	if r.Config.MaxSteps <= 0 {
		return &ValidationError{Field: "Config.MaxSteps", Reason: "must be positive"}
	}
	if r.Config.Dim > 0 && len(r.Point) != r.Config.Dim {
		return &ValidationError{
			Field:  "Point",
			Reason: fmt.Sprintf("length mismatch: expected %d coordinates", r.Config.Dim),
		}
	}
	return nil
}

// RunInfo is result metadata without the iterate, for cheap listings.
type RunInfo struct {
	RunID      string    `json:"runId"`
	Problem    string    `json:"problem"`
	Scheme     string    `json:"scheme"`
	Cost       float64   `json:"cost"`
	Iterations int       `json:"iterations"`
	Stationary bool      `json:"stationary"`
	Timestamp  time.Time `json:"timestamp"`
}

// ToInfo converts a full RunResult to its metadata.
func (r *RunResult) ToInfo() RunInfo {
	return RunInfo{
		RunID:      r.RunID,
		Problem:    r.Config.Problem,
		Scheme:     r.Config.Scheme,
		Cost:       r.Cost,
		Iterations: r.Iterations,
		Stationary: r.Stationary,
		Timestamp:  r.Timestamp,
	}
}

// ValidationError reports an invalid RunResult field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + " " + e.Reason
}
