package quiz

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

func newEntries(n int) []vocabulary.Entry {
	entries := make([]vocabulary.Entry, 0, n)
	for i := 1; i <= n; i++ {
		entries = append(entries, vocabulary.Entry{
			ID:         fmt.Sprintf("e%d", i),
			English:    fmt.Sprintf("word %d", i),
			Vietnamese: fmt.Sprintf("từ %d", i),
		})
	}
	return entries
}

func targetIndexOf(t *testing.T, test *MatchingTest, entryID string) int {
	t.Helper()
	for i, target := range test.Targets() {
		if target.ID == entryID {
			return i
		}
	}
	require.FailNow(t, "entry is not in the target column", entryID)
	return -1
}

// answerAll types every expected answer and advances to the end of the test.
func answerAll(t *testing.T, test *TypingTest) []Event {
	t.Helper()
	var last []Event
	for !test.Completed() {
		test.Input(test.ExpectedAnswer())
		events, err := test.Advance()
		require.NoError(t, err)
		last = events
	}
	return last
}

// matchAll matches every pair of every round and returns the events of the final NextRound.
func matchAll(t *testing.T, test *MatchingTest) []Event {
	t.Helper()
	var last []Event
	for !test.Completed() {
		for i, source := range test.Sources() {
			_, err := test.SelectSource(i)
			require.NoError(t, err)
			_, err = test.SelectTarget(targetIndexOf(t, test, source.ID))
			require.NoError(t, err)
		}
		events, err := test.NextRound()
		require.NoError(t, err)
		last = events
	}
	return last
}

func entryIDs(entries []vocabulary.Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		ids = append(ids, entry.ID)
	}
	return ids
}
