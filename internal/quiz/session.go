package quiz

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

var (
	ErrNotEnoughEntries = errors.New("not enough vocabulary entries")
	ErrTestCompleted    = errors.New("test has already been completed")
	ErrNoActiveTest     = errors.New("no test is running")
	ErrTestNotFinished  = errors.New("the running test has not finished")
)

type SessionOptions struct {
	MinimumEntries int
	Typing         TypingOptions
	Rounds         RoundOptions
	Matching       MatchingOptions
}

func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		MinimumEntries: 5,
		Typing:         DefaultTypingOptions(),
		Rounds:         DefaultRoundOptions(),
		Matching:       DefaultMatchingOptions(),
	}
}

// Session holds the state of one test selection: the running test,
// the outcomes of every test type, and which of them are complete.
// Nothing in it is persisted.
type Session struct {
	entries []vocabulary.Entry
	options SessionOptions
	rng     *rand.Rand
	logger  *slog.Logger

	outcomes  map[TestType]*Outcome
	completed map[TestType]bool
	active    TestType
	typing    *TypingTest
	matching  *MatchingTest
	report    *Report
}

// NewSession rejects vocabulary sets smaller than options.MinimumEntries, including empty ones.
func NewSession(entries []vocabulary.Entry, options SessionOptions, rng *rand.Rand) (*Session, error) {
	if len(entries) == 0 || len(entries) < options.MinimumEntries {
		return nil, fmt.Errorf("%w: at least %d are required, got %d", ErrNotEnoughEntries, max(1, options.MinimumEntries), len(entries))
	}

	s := &Session{
		entries: entries,
		options: options,
		rng:     rng,
		logger:  slog.Default(),
	}
	s.reset()
	return s, nil
}

func (s *Session) reset() {
	s.outcomes = make(map[TestType]*Outcome, len(AllTestTypes))
	for _, testType := range AllTestTypes {
		s.outcomes[testType] = NewOutcome()
	}
	s.completed = make(map[TestType]bool, len(AllTestTypes))
	s.discardActive()
	s.report = nil
}

func (s *Session) discardActive() {
	s.active = 0
	s.typing = nil
	s.matching = nil
}

// Entries returns the vocabulary the session quizzes on.
func (s *Session) Entries() []vocabulary.Entry {
	return s.entries
}

// EstimatedRounds is the approximate number of matching rounds, shown before the test starts.
func (s *Session) EstimatedRounds() int {
	return EstimatedRounds(len(s.entries), s.options.Rounds.RoundSize, s.options.Rounds.Repetitions)
}

func (s *Session) IsCompleted(testType TestType) bool {
	return s.completed[testType]
}

// Remaining returns the test types that have not been completed yet.
func (s *Session) Remaining() []TestType {
	var remaining []TestType
	for _, testType := range AllTestTypes {
		if !s.completed[testType] {
			remaining = append(remaining, testType)
		}
	}
	return remaining
}

// Active returns the running test type, or false when none is running.
func (s *Session) Active() (TestType, bool) {
	return s.active, s.active != 0
}

// TypingTest returns the running typing test.
func (s *Session) TypingTest() (*TypingTest, bool) {
	return s.typing, s.typing != nil
}

// MatchingTest returns the running matching test.
func (s *Session) MatchingTest() (*MatchingTest, bool) {
	return s.matching, s.matching != nil
}

// Outcome returns the outcome record of testType.
func (s *Session) Outcome(testType TestType) *Outcome {
	return s.outcomes[testType]
}

func (s *Session) checkStartable(testType TestType) error {
	if s.completed[testType] {
		return fmt.Errorf("%s: %w", testType, ErrTestCompleted)
	}
	if s.active != 0 {
		s.logger.Debug("discarding unfinished test", slog.String("testType", s.active.String()))
		s.outcomes[s.active] = NewOutcome()
		s.discardActive()
	}
	s.outcomes[testType] = NewOutcome()
	return nil
}

// StartTypingTest starts a typing test, discarding any unfinished test.
func (s *Session) StartTypingTest(testType TestType) (*TypingTest, error) {
	if _, ok := testType.Direction(); !ok {
		return nil, fmt.Errorf("%s is not a typing test", testType)
	}
	if err := s.checkStartable(testType); err != nil {
		return nil, err
	}
	test, err := NewTypingTest(testType, s.entries, s.outcomes[testType], s.options.Typing, s.rng)
	if err != nil {
		return nil, fmt.Errorf("NewTypingTest() > %w", err)
	}
	s.active = testType
	s.typing = test
	return test, nil
}

// StartMatchingTest generates the round schedule and starts the matching test,
// discarding any unfinished test.
func (s *Session) StartMatchingTest() (*MatchingTest, GenerationStats, error) {
	if err := s.checkStartable(TestTypeMatching); err != nil {
		return nil, GenerationStats{}, err
	}

	rounds, stats := GenerateRounds(s.entries, s.options.Rounds, s.rng)
	if stats.Shortfall > 0 {
		s.logger.Warn("matching schedule is short of the repetition target",
			slog.Int("entries", len(s.entries)),
			slog.Int("rounds", stats.Rounds),
			slog.Int("shortfall", stats.Shortfall),
		)
	}

	test, err := NewMatchingTest(rounds, s.outcomes[TestTypeMatching], s.options.Matching, s.rng)
	if err != nil {
		return nil, stats, fmt.Errorf("NewMatchingTest() > %w", err)
	}
	s.active = TestTypeMatching
	s.matching = test
	return test, stats, nil
}

// Exit abandons the running test when confirmed. The test is not marked complete
// and its partial outcome is dropped. It reports whether anything was discarded.
func (s *Session) Exit(confirmed bool) bool {
	if !confirmed || s.active == 0 {
		return false
	}
	s.outcomes[s.active] = NewOutcome()
	s.discardActive()
	return true
}

func (s *Session) activeCompleted() bool {
	switch {
	case s.typing != nil:
		return s.typing.Completed()
	case s.matching != nil:
		return s.matching.Completed()
	default:
		return false
	}
}

// Complete marks the running test complete once its engine has finished.
// When that completes the last test type, the aggregate report is returned with true;
// this happens once per session.
func (s *Session) Complete() (Report, bool, error) {
	if s.active == 0 {
		return Report{}, false, ErrNoActiveTest
	}
	if !s.activeCompleted() {
		return Report{}, false, fmt.Errorf("%s: %w", s.active, ErrTestNotFinished)
	}

	s.completed[s.active] = true
	s.logger.Debug("test completed",
		slog.String("testType", s.active.String()),
		slog.Int("correct", len(s.outcomes[s.active].Correct)),
		slog.Int("wrong", len(s.outcomes[s.active].Wrong)),
	)
	s.discardActive()

	if len(s.Remaining()) > 0 || s.report != nil {
		return Report{}, false, nil
	}
	report := Aggregate(s.outcomes)
	s.report = &report
	return report, true, nil
}

// Report returns the aggregate report once all test types are complete.
func (s *Session) Report() (Report, bool) {
	if s.report == nil {
		return Report{}, false
	}
	return *s.report, true
}

// Retry starts over with the same vocabulary.
func (s *Session) Retry() {
	s.reset()
}
