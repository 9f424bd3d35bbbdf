package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Verdict is the outcome classification of a submitted solution.
type Verdict string

const (
	VerdictAccepted            Verdict = "ACCEPTED"
	VerdictWrongAnswer         Verdict = "WRONG_ANSWER"
	VerdictTimeLimitExceeded   Verdict = "TIME_LIMIT_EXCEEDED"
	VerdictRuntimeError        Verdict = "RUNTIME_ERROR"
	VerdictCompilationError    Verdict = "COMPILATION_ERROR"
	VerdictMemoryLimitExceeded Verdict = "MEMORY_LIMIT_EXCEEDED"
	VerdictUnknown             Verdict = "UNKNOWN"
)

// ParseVerdict maps a verdict string from the platform (or a persisted blob)
// to a Verdict, case-insensitively. "OK" is the platform's spelling for an
// accepted submission. Unrecognized values collapse to VerdictUnknown so a
// single odd verdict never fails a whole decode.
func ParseVerdict(s string) Verdict {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OK", "ACCEPTED":
		return VerdictAccepted
	case "WRONG_ANSWER":
		return VerdictWrongAnswer
	case "TIME_LIMIT_EXCEEDED":
		return VerdictTimeLimitExceeded
	case "RUNTIME_ERROR":
		return VerdictRuntimeError
	case "COMPILATION_ERROR":
		return VerdictCompilationError
	case "MEMORY_LIMIT_EXCEEDED":
		return VerdictMemoryLimitExceeded
	default:
		return VerdictUnknown
	}
}

func (v *Verdict) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = ParseVerdict(s)
	return nil
}

func (v Verdict) IsAccepted() bool {
	return v == VerdictAccepted
}

// Label returns a human-readable form, e.g. "Wrong Answer".
func (v Verdict) Label() string {
	words := strings.Split(string(v), "_")
	for i, w := range words {
		if len(w) > 0 {
			words[i] = string(w[0]) + strings.ToLower(w[1:])
		}
	}
	return strings.Join(words, " ")
}

// Submission is a locally recorded submission. Records are append-only:
// once created they are never mutated or deleted.
type Submission struct {
	ID              string    `json:"id"`
	ProblemID       string    `json:"problem_id"`
	Verdict         Verdict   `json:"verdict"`
	TimeLabel       string    `json:"time"`
	PassedTestCount int       `json:"passed_test_count"`
	TestCount       int       `json:"test_count"`
	Language        string    `json:"language"`
	CreatedAt       time.Time `json:"created_at"`
}

// ProblemRef identifies a problem inside a submission history entry.
type ProblemRef struct {
	ContestID int    `json:"contestId"`
	Index     string `json:"index"`
	Name      string `json:"name"`
}

// ID returns the composite identity, matching Problem.ID.
func (r ProblemRef) ID() string {
	return Problem{ContestID: r.ContestID, Index: r.Index}.ID()
}

// HistoryEntry is one entry of a user's submission history (user.status).
// Verdict may be absent while testing is in progress.
type HistoryEntry struct {
	Problem ProblemRef `json:"problem"`
	Verdict Verdict    `json:"verdict"`
}
