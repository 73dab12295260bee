package workflow

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFileType = errors.New("not a .drawio file")

	// ErrPrecondition is matched by every operation called in the wrong state.
	ErrPrecondition       = errors.New("workflow precondition violated")
	ErrNoFileSelected     = fmt.Errorf("%w: no file selected", ErrPrecondition)
	ErrConversionInFlight = fmt.Errorf("%w: conversion already in flight", ErrPrecondition)
	ErrWrongStep          = fmt.Errorf("%w: wrong step", ErrPrecondition)

	// ErrSuperseded is reported by a Conversion whose file was replaced by a
	// new selection before the response arrived.
	ErrSuperseded = errors.New("conversion superseded by a new selection")
)
