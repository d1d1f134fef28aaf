// Package external runs the helper programs around the dictionary: the
// chewing-editor reload and the rclone upload.
package external

import "fmt"

// Outcome classifies how a call to an external tool ended.
type Outcome int

const (
	OutcomeOK Outcome = iota
	// OutcomeToolMissing means the tool could not be found or reached.
	OutcomeToolMissing
	// OutcomeToolFailed means the tool ran and reported a failure.
	OutcomeToolFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeToolMissing:
		return "tool missing"
	case OutcomeToolFailed:
		return "tool failed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is what every external call returns instead of an error. Callers
// report it and move on.
type Result struct {
	Outcome Outcome
	// Tool is a short human name such as "chewing-editor" or "rclone".
	Tool string
	Err  error
}

func OK(tool string) Result {
	return Result{Outcome: OutcomeOK, Tool: tool}
}

func ToolMissing(tool string, err error) Result {
	return Result{Outcome: OutcomeToolMissing, Tool: tool, Err: err}
}

func ToolFailed(tool string, err error) Result {
	return Result{Outcome: OutcomeToolFailed, Tool: tool, Err: err}
}

func (r Result) Succeeded() bool {
	return r.Outcome == OutcomeOK
}

// Message is the line shown to the user for this result.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeOK:
		return fmt.Sprintf("%s finished successfully", r.Tool)
	case OutcomeToolMissing:
		return fmt.Sprintf("%s is not available, skipped: %v", r.Tool, r.Err)
	case OutcomeToolFailed:
		return fmt.Sprintf("%s failed: %v", r.Tool, r.Err)
	default:
		return fmt.Sprintf("%s ended with an unknown outcome %s", r.Tool, r.Outcome)
	}
}
