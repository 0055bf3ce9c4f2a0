package training

import "errors"

var (
	ErrCourseNotFound     = errors.New("training course not found")
	ErrCourseAlreadyTaken = errors.New("training course already marked as taken")
	ErrDebtNotFound       = errors.New("training debt not found")
)
