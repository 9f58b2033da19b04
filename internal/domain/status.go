package domain

import "time"

// Status is the lifecycle state shared by problem and subtask instances.
// Values outside the known set are stored as sent.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Known reports whether s is one of the statuses the service assigns meaning to.
func (s Status) Known() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Transition is the set of column changes implied by a status update.
// The *IfUnset stamps must only be written when the stored value is null.
type Transition struct {
	Status             *Status
	StartedAtIfUnset   *time.Time
	CompletedAt        *time.Time
	CompletedAtIfUnset *time.Time
}

// Empty reports whether the transition changes nothing.
func (t Transition) Empty() bool {
	return t.Status == nil && t.StartedAtIfUnset == nil && t.CompletedAt == nil && t.CompletedAtIfUnset == nil
}

// Apply returns the timestamps that result from applying t to the stored ones.
func (t Transition) Apply(startedAt, completedAt *time.Time) (*time.Time, *time.Time) {
	if startedAt == nil && t.StartedAtIfUnset != nil {
		startedAt = t.StartedAtIfUnset
	}

	switch {
	case t.CompletedAt != nil:
		completedAt = t.CompletedAt
	case completedAt == nil && t.CompletedAtIfUnset != nil:
		completedAt = t.CompletedAtIfUnset
	}

	return startedAt, completedAt
}

// InstanceTransition derives the problem instance changes for a status update.
// An explicit completedAt always wins. Otherwise moving to completed stamps
// now unless a completion time is already recorded.
func InstanceTransition(status *Status, completedAt *time.Time, now time.Time) Transition {
	t := Transition{Status: status, CompletedAt: completedAt}

	if completedAt == nil && status != nil && *status == StatusCompleted {
		t.CompletedAtIfUnset = &now
	}

	return t
}

// SubtaskTransition is InstanceTransition plus start stamping: moving to
// in-progress records startedAt once.
func SubtaskTransition(status *Status, completedAt *time.Time, now time.Time) Transition {
	t := InstanceTransition(status, completedAt, now)

	if status != nil && *status == StatusInProgress {
		t.StartedAtIfUnset = &now
	}

	return t
}
