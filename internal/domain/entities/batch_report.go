package entities

import "time"

type BatchFailure struct {
	InputPath string
	Err       error
}

type BatchReport struct {
	runID     string
	found     int
	processed int
	succeeded int
	failures  []BatchFailure
	startedAt time.Time
}

func NewBatchReport(runID string, found int) *BatchReport {
	return &BatchReport{
		runID:     runID,
		found:     found,
		startedAt: time.Now(),
	}
}

func (r *BatchReport) RunID() string {
	return r.runID
}

func (r *BatchReport) Found() int {
	return r.found
}

// Processed is the number of files a transform was attempted for.
func (r *BatchReport) Processed() int {
	return r.processed
}

func (r *BatchReport) Succeeded() int {
	return r.succeeded
}

func (r *BatchReport) Failures() []BatchFailure {
	return r.failures
}

func (r *BatchReport) StartedAt() time.Time {
	return r.startedAt
}

func (r *BatchReport) RecordSuccess() {
	r.processed++
	r.succeeded++
}

func (r *BatchReport) RecordFailure(inputPath string, err error) {
	r.processed++
	r.failures = append(r.failures, BatchFailure{InputPath: inputPath, Err: err})
}
