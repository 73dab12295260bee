package workflow

import (
	"fmt"

	"github.com/dmitrijs2005/drawioconv/internal/client/models"
)

// Step is the ordinal stage of the select → convert → download sequence.
type Step int

const (
	StepSelect Step = iota
	StepConvert
	StepDownload
)

// StepCount is the number of steps shown by the stepper.
const StepCount = 3

func (s Step) String() string {
	switch s {
	case StepSelect:
		return "select"
	case StepConvert:
		return "convert"
	case StepDownload:
		return "download"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Phase tracks a conversion between issuing the request and applying its
// result. The result of a successful request is applied only after the
// minimum visual delay, so PhaseResponseReceived is observable on its own.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRequestIssued
	PhaseResponseReceived
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRequestIssued:
		return "request-issued"
	case PhaseResponseReceived:
		return "response-received"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is a snapshot of the controller.
type State struct {
	Step     Step
	File     models.FileHandle
	Artifact *models.ConvertedArtifact
	InFlight bool
	Phase    Phase
}

// FileName returns the selected file name or "".
func (s State) FileName() string {
	if s.File == nil {
		return ""
	}
	return s.File.Name()
}
