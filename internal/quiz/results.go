package quiz

import (
	"math"

	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

// TestBreakdown is the per test count, unmodified by aggregation.
type TestBreakdown struct {
	TestType TestType
	Correct  int
	Wrong    int
}

// Report is the aggregate over all test types of a session.
type Report struct {
	TotalCorrect int
	TotalWrong   int
	Percent      int
	// WrongEntries is the union of wrong entries, deduplicated by id, in test order.
	WrongEntries []vocabulary.Entry
	Breakdown    []TestBreakdown
}

// Aggregate merges the outcomes of all test types.
// A word wrong in several tests counts once towards TotalWrong,
// while TotalCorrect sums the correct answers of each test.
func Aggregate(outcomes map[TestType]*Outcome) Report {
	report := Report{
		WrongEntries: []vocabulary.Entry{},
		Breakdown:    make([]TestBreakdown, 0, len(AllTestTypes)),
	}
	seen := make(map[string]struct{})

	for _, testType := range AllTestTypes {
		outcome, ok := outcomes[testType]
		if !ok || outcome == nil {
			outcome = NewOutcome()
		}
		report.Breakdown = append(report.Breakdown, TestBreakdown{
			TestType: testType,
			Correct:  len(outcome.Correct),
			Wrong:    len(outcome.Wrong),
		})
		report.TotalCorrect += len(outcome.Correct)

		for _, entry := range outcome.Wrong {
			if _, ok := seen[entry.ID]; ok {
				continue
			}
			seen[entry.ID] = struct{}{}
			report.WrongEntries = append(report.WrongEntries, entry)
		}
	}

	report.TotalWrong = len(report.WrongEntries)
	if total := report.TotalCorrect + report.TotalWrong; total > 0 {
		report.Percent = int(math.Round(float64(report.TotalCorrect) / float64(total) * 100))
	}
	return report
}
