package quiz

import (
	"time"

	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

type EventKind int

const (
	// EventCorrect is an exact typed answer. Credited is false when the answer had been revealed first.
	EventCorrect EventKind = iota + 1
	// EventClose is a near miss worth a spelling hint.
	EventClose
	// EventWrong is a typed answer at least as long as the expected one that does not match.
	EventWrong
	// EventRevealed carries the expected answer in Answer.
	EventRevealed
	EventMatchCorrect
	// EventMatchWrong is transient; the indicator clears after Delay.
	EventMatchWrong
	// EventRoundComplete is announced after Delay.
	EventRoundComplete
	EventTestComplete
)

func (k EventKind) String() string {
	switch k {
	case EventCorrect:
		return "correct"
	case EventClose:
		return "close"
	case EventWrong:
		return "wrong"
	case EventRevealed:
		return "revealed"
	case EventMatchCorrect:
		return "match_correct"
	case EventMatchWrong:
		return "match_wrong"
	case EventRoundComplete:
		return "round_complete"
	case EventTestComplete:
		return "test_complete"
	default:
		return "unknown"
	}
}

// Event is the result of a state transition, for the presentation layer to render.
type Event struct {
	Kind     EventKind
	TestType TestType
	Entry    vocabulary.Entry
	Answer   string
	Credited bool
	Delay    time.Duration

	// SourceIndex and TargetIndex are the matching columns involved, or -1.
	SourceIndex int
	TargetIndex int
}
