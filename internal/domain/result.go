package domain

import "time"

// Action is what happened to a single file during a run
type Action string

const (
	ActionGenerated Action = "generated"
	ActionSkipped   Action = "skipped-exists"
	ActionFixed     Action = "fixed"
	ActionUnchanged Action = "unchanged"
	ActionFailed    Action = "failed"
)

// Outcome records the action taken for one file
type Outcome struct {
	Path   string `json:"path"`
	Action Action `json:"action"`
	Error  string `json:"error,omitempty"`
}

// Summary aggregates the outcomes of one run
type Summary struct {
	Generated int `json:"generated"`
	Skipped   int `json:"skipped"`
	Fixed     int `json:"fixed"`
	Unchanged int `json:"unchanged"`
	Failed    int `json:"failed"`
}

// Add counts an outcome
func (s *Summary) Add(o Outcome) {
	switch o.Action {
	case ActionGenerated:
		s.Generated++
	case ActionSkipped:
		s.Skipped++
	case ActionFixed:
		s.Fixed++
	case ActionUnchanged:
		s.Unchanged++
	case ActionFailed:
		s.Failed++
	}
}

// Total is the number of files the run looked at
func (s Summary) Total() int {
	return s.Generated + s.Skipped + s.Fixed + s.Unchanged + s.Failed
}

// RunReport is the persisted record of the last run of a tool
type RunReport struct {
	Tool      string    `json:"tool"`
	Root      string    `json:"root"`
	DryRun    bool      `json:"dry_run,omitempty"`
	Summary   Summary   `json:"summary"`
	Outcomes  []Outcome `json:"outcomes"`
	Duration  string    `json:"duration"`
	Timestamp string    `json:"timestamp"`
}

// NewRunReport builds a report from collected outcomes
func NewRunReport(tool, root string, outcomes []Outcome, duration time.Duration) *RunReport {
	r := &RunReport{
		Tool:      tool,
		Root:      root,
		Outcomes:  outcomes,
		Duration:  duration.String(),
		Timestamp: time.Now().Format(time.RFC3339),
	}
	for _, o := range outcomes {
		r.Summary.Add(o)
	}
	return r
}

// Reporter receives outcomes as they happen
type Reporter interface {
	Report(o Outcome)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(o Outcome)

func (f ReporterFunc) Report(o Outcome) { f(o) }

// Discard ignores every outcome
var Discard Reporter = ReporterFunc(func(Outcome) {})
