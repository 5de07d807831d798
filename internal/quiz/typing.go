package quiz

import (
	"errors"
	"fmt"
	"math/rand"
	"unicode/utf8"

	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

var (
	ErrNoEntries         = errors.New("no vocabulary entries")
	ErrAdvanceNotAllowed = errors.New("the current word has been neither answered nor revealed")
)

// TypingOptions are the thresholds for the "close" hint.
type TypingOptions struct {
	// CloseSimilarity is the similarity an answer has to exceed to be close.
	CloseSimilarity float64
	// CloseLengthRatio is the fraction of the expected length a close answer needs.
	CloseLengthRatio float64
}

func DefaultTypingOptions() TypingOptions {
	return TypingOptions{
		CloseSimilarity:  0.9,
		CloseLengthRatio: 0.8,
	}
}

// TypingTest is a recall quiz in one direction over a shuffled word list.
type TypingTest struct {
	testType  TestType
	direction Direction
	words     []vocabulary.Entry
	position  int
	outcome   *Outcome
	options   TypingOptions

	// per word state, reset on Advance
	answered bool
	revealed bool
}

// NewTypingTest shuffles entries into the presentation order and records outcomes into outcome.
func NewTypingTest(
	testType TestType,
	entries []vocabulary.Entry,
	outcome *Outcome,
	options TypingOptions,
	rng *rand.Rand,
) (*TypingTest, error) {
	direction, ok := testType.Direction()
	if !ok {
		return nil, fmt.Errorf("%s is not a typing test", testType)
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	words := make([]vocabulary.Entry, len(entries))
	copy(words, entries)
	Shuffle(rng, words)

	return &TypingTest{
		testType:  testType,
		direction: direction,
		words:     words,
		outcome:   outcome,
		options:   options,
	}, nil
}

func (t *TypingTest) TestType() TestType {
	return t.testType
}

func (t *TypingTest) Direction() Direction {
	return t.direction
}

// Order returns the presentation order of the session.
func (t *TypingTest) Order() []vocabulary.Entry {
	order := make([]vocabulary.Entry, len(t.words))
	copy(order, t.words)
	return order
}

// Current returns the word being asked, or false once the test is complete.
func (t *TypingTest) Current() (vocabulary.Entry, bool) {
	if t.Completed() {
		return vocabulary.Entry{}, false
	}
	return t.words[t.position], true
}

func (t *TypingTest) Prompt() string {
	word, ok := t.Current()
	if !ok {
		return ""
	}
	return t.direction.Prompt(word)
}

func (t *TypingTest) ExpectedAnswer() string {
	word, ok := t.Current()
	if !ok {
		return ""
	}
	return t.direction.Answer(word)
}

// Progress returns the zero based position and the number of words.
func (t *TypingTest) Progress() (int, int) {
	return t.position, len(t.words)
}

func (t *TypingTest) Completed() bool {
	return t.position >= len(t.words)
}

// Locked reports whether input is no longer accepted for the current word.
func (t *TypingTest) Locked() bool {
	return t.answered
}

func (t *TypingTest) Revealed() bool {
	return t.revealed
}

// CanAdvance reports whether the current word is answered or revealed.
func (t *TypingTest) CanAdvance() bool {
	return !t.Completed() && (t.answered || t.revealed)
}

// Input evaluates the current text of the answer field. It is called on every update,
// so partial input shorter than the expected answer yields no event.
func (t *TypingTest) Input(text string) []Event {
	word, ok := t.Current()
	if !ok || t.answered {
		return nil
	}

	answer := Normalize(text)
	expected := Normalize(t.direction.Answer(word))

	if answer == expected {
		t.answered = true
		credited := false
		if !t.revealed {
			credited = t.outcome.RecordCorrect(word)
		}
		return []Event{t.event(EventCorrect, word, func(e *Event) {
			e.Credited = credited
		})}
	}
	if answer == "" {
		return nil
	}

	answerLen := utf8.RuneCountInString(answer)
	expectedLen := utf8.RuneCountInString(expected)
	if Similarity(answer, expected) > t.options.CloseSimilarity &&
		float64(answerLen) >= float64(expectedLen)*t.options.CloseLengthRatio {
		return []Event{t.event(EventClose, word, nil)}
	}
	if answerLen >= expectedLen {
		return []Event{t.event(EventWrong, word, nil)}
	}
	return nil
}

// Reveal shows the expected answer and records the word as wrong unless it was already answered.
func (t *TypingTest) Reveal() []Event {
	word, ok := t.Current()
	if !ok || t.revealed {
		return nil
	}
	t.revealed = true
	t.outcome.RecordWrong(word)
	return []Event{t.event(EventRevealed, word, func(e *Event) {
		e.Answer = t.direction.Answer(word)
	})}
}

// Advance moves to the next word, completing the test after the last one.
func (t *TypingTest) Advance() ([]Event, error) {
	if !t.CanAdvance() {
		return nil, ErrAdvanceNotAllowed
	}
	t.position++
	t.answered = false
	t.revealed = false

	if t.Completed() {
		return []Event{{
			Kind:        EventTestComplete,
			TestType:    t.testType,
			SourceIndex: -1,
			TargetIndex: -1,
		}}, nil
	}
	return nil, nil
}

func (t *TypingTest) event(kind EventKind, word vocabulary.Entry, fn func(e *Event)) Event {
	e := Event{
		Kind:        kind,
		TestType:    t.testType,
		Entry:       word,
		SourceIndex: -1,
		TargetIndex: -1,
	}
	if fn != nil {
		fn(&e)
	}
	return e
}
