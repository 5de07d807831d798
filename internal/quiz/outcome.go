package quiz

import "github.com/vocabquiz/vocabquiz/internal/vocabulary"

// Outcome records, for one test type, which entries were answered correctly unaided
// and which were answered wrong or revealed.
// The first outcome recorded for an entry id wins; it is never moved to the other list.
type Outcome struct {
	Correct []vocabulary.Entry
	Wrong   []vocabulary.Entry

	recorded map[string]bool
}

func NewOutcome() *Outcome {
	return &Outcome{
		Correct:  []vocabulary.Entry{},
		Wrong:    []vocabulary.Entry{},
		recorded: make(map[string]bool),
	}
}

// RecordCorrect adds entry to the correct list and reports whether it was recorded.
func (o *Outcome) RecordCorrect(entry vocabulary.Entry) bool {
	if _, ok := o.recorded[entry.ID]; ok {
		return false
	}
	o.recorded[entry.ID] = true
	o.Correct = append(o.Correct, entry)
	return true
}

// RecordWrong adds entry to the wrong list and reports whether it was recorded.
func (o *Outcome) RecordWrong(entry vocabulary.Entry) bool {
	if _, ok := o.recorded[entry.ID]; ok {
		return false
	}
	o.recorded[entry.ID] = false
	o.Wrong = append(o.Wrong, entry)
	return true
}

func (o *Outcome) IsCorrect(entryID string) bool {
	correct, ok := o.recorded[entryID]
	return ok && correct
}

func (o *Outcome) IsWrong(entryID string) bool {
	correct, ok := o.recorded[entryID]
	return ok && !correct
}
