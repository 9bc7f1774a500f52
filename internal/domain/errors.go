package domain

import "errors"

var (
	// ErrNoProblemAvailable means the store is empty or every problem the
	// current selection can reach has already been delivered.
	ErrNoProblemAvailable = errors.New("no problem available")

	// ErrPositionOutOfRange means a requested 1-based position is outside
	// [1, total].
	ErrPositionOutOfRange = errors.New("position out of range")

	// ErrBehindProgress means a skip target points at or before the problems
	// already delivered.
	ErrBehindProgress = errors.New("requested problem is behind current progress")
)
