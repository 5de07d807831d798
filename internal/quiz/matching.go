package quiz

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

var (
	ErrNoRounds        = errors.New("no matching rounds")
	ErrRoundIncomplete = errors.New("the current round has unmatched items")
	ErrInvalidItem     = errors.New("invalid item index")
)

type MatchingOptions struct {
	// WrongFeedbackDelay is how long the wrong indicator stays on a mismatched pair.
	WrongFeedbackDelay time.Duration
	// RoundCompleteDelay paces the round complete announcement.
	RoundCompleteDelay time.Duration
}

func DefaultMatchingOptions() MatchingOptions {
	return MatchingOptions{
		WrongFeedbackDelay: 500 * time.Millisecond,
		RoundCompleteDelay: 500 * time.Millisecond,
	}
}

// MatchingTest pairs English items (source) with Vietnamese items (target) round by round.
type MatchingTest struct {
	rounds  []Round
	outcome *Outcome
	options MatchingOptions
	rng     *rand.Rand

	position      int
	targets       []vocabulary.Entry
	sourceMatched []bool
	targetMatched []bool
	source        int
	target        int
	correct       int
}

// NewMatchingTest starts at the first round of rounds.
func NewMatchingTest(rounds []Round, outcome *Outcome, options MatchingOptions, rng *rand.Rand) (*MatchingTest, error) {
	if len(rounds) == 0 {
		return nil, ErrNoRounds
	}
	t := &MatchingTest{
		rounds:  rounds,
		outcome: outcome,
		options: options,
		rng:     rng,
	}
	t.loadRound()
	return t, nil
}

func (t *MatchingTest) loadRound() {
	t.source = -1
	t.target = -1
	t.correct = 0
	if t.Completed() {
		t.targets = nil
		t.sourceMatched = nil
		t.targetMatched = nil
		return
	}

	round := t.rounds[t.position]
	t.targets = make([]vocabulary.Entry, len(round))
	copy(t.targets, round)
	Shuffle(t.rng, t.targets)
	t.sourceMatched = make([]bool, len(round))
	t.targetMatched = make([]bool, len(round))
}

// Rounds returns the whole schedule.
func (t *MatchingTest) Rounds() []Round {
	return t.rounds
}

// Progress returns the zero based round index and the number of rounds.
func (t *MatchingTest) Progress() (int, int) {
	return t.position, len(t.rounds)
}

func (t *MatchingTest) Completed() bool {
	return t.position >= len(t.rounds)
}

// Sources returns the source column of the current round.
func (t *MatchingTest) Sources() []vocabulary.Entry {
	if t.Completed() {
		return nil
	}
	return t.rounds[t.position]
}

// Targets returns the shuffled target column of the current round.
func (t *MatchingTest) Targets() []vocabulary.Entry {
	return t.targets
}

func (t *MatchingTest) SourceMatched(i int) bool {
	return i >= 0 && i < len(t.sourceMatched) && t.sourceMatched[i]
}

func (t *MatchingTest) TargetMatched(i int) bool {
	return i >= 0 && i < len(t.targetMatched) && t.targetMatched[i]
}

// Selection returns the selected source and target indexes, -1 when unselected.
func (t *MatchingTest) Selection() (int, int) {
	return t.source, t.target
}

// CorrectCount is the number of pairs matched in the current round.
func (t *MatchingTest) CorrectCount() int {
	return t.correct
}

func (t *MatchingTest) RoundComplete() bool {
	return !t.Completed() && t.correct == len(t.rounds[t.position])
}

// SelectSource selects the i-th source item, replacing an earlier source selection.
// Matched items cannot be selected.
func (t *MatchingTest) SelectSource(i int) ([]Event, error) {
	if t.Completed() || i < 0 || i >= len(t.sourceMatched) {
		return nil, ErrInvalidItem
	}
	if t.sourceMatched[i] {
		return nil, nil
	}
	t.source = i
	return t.evaluate(), nil
}

// SelectTarget selects the i-th target item, replacing an earlier target selection.
// Matched items cannot be selected.
func (t *MatchingTest) SelectTarget(i int) ([]Event, error) {
	if t.Completed() || i < 0 || i >= len(t.targetMatched) {
		return nil, ErrInvalidItem
	}
	if t.targetMatched[i] {
		return nil, nil
	}
	t.target = i
	return t.evaluate(), nil
}

func (t *MatchingTest) evaluate() []Event {
	if t.source < 0 || t.target < 0 {
		return nil
	}
	source, target := t.source, t.target
	t.source, t.target = -1, -1

	entry := t.rounds[t.position][source]
	if entry.ID != t.targets[target].ID {
		t.outcome.RecordWrong(entry)
		return []Event{{
			Kind:        EventMatchWrong,
			TestType:    TestTypeMatching,
			Entry:       entry,
			Delay:       t.options.WrongFeedbackDelay,
			SourceIndex: source,
			TargetIndex: target,
		}}
	}

	t.sourceMatched[source] = true
	t.targetMatched[target] = true
	t.correct++
	credited := t.outcome.RecordCorrect(entry)

	events := []Event{{
		Kind:        EventMatchCorrect,
		TestType:    TestTypeMatching,
		Entry:       entry,
		Credited:    credited,
		SourceIndex: source,
		TargetIndex: target,
	}}
	if t.RoundComplete() {
		events = append(events, Event{
			Kind:        EventRoundComplete,
			TestType:    TestTypeMatching,
			Delay:       t.options.RoundCompleteDelay,
			SourceIndex: -1,
			TargetIndex: -1,
		})
	}
	return events
}

// NextRound advances past a completed round, completing the test after the last one.
func (t *MatchingTest) NextRound() ([]Event, error) {
	if !t.RoundComplete() {
		return nil, ErrRoundIncomplete
	}
	t.position++
	t.loadRound()

	if t.Completed() {
		return []Event{{
			Kind:        EventTestComplete,
			TestType:    TestTypeMatching,
			SourceIndex: -1,
			TargetIndex: -1,
		}}, nil
	}
	return nil, nil
}
