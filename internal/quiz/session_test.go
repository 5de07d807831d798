package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, n int) *Session {
	t.Helper()
	s, err := NewSession(newEntries(n), DefaultSessionOptions(), NewRand(42))
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	tests := []struct {
		name    string
		entries int
		minimum int
		wantErr bool
	}{
		{name: "minimum met", entries: 5, minimum: 5},
		{name: "more than the minimum", entries: 30, minimum: 5},
		{name: "below the minimum", entries: 4, minimum: 5, wantErr: true},
		{name: "empty without a minimum", entries: 0, minimum: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := DefaultSessionOptions()
			options.MinimumEntries = tt.minimum

			s, err := NewSession(newEntries(tt.entries), options, NewRand(1))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotEnoughEntries)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, AllTestTypes, s.Remaining())
			_, active := s.Active()
			assert.False(t, active)
		})
	}
}

func TestSession_EstimatedRounds(t *testing.T) {
	assert.Equal(t, 3, newSession(t, 5).EstimatedRounds())
	assert.Equal(t, 8, newSession(t, 12).EstimatedRounds())
}

func TestSession_StartTypingTest(t *testing.T) {
	s := newSession(t, 5)

	_, err := s.StartTypingTest(TestTypeMatching)
	assert.Error(t, err)

	test, err := s.StartTypingTest(TestTypeEnglishToVietnamese)
	require.NoError(t, err)
	assert.Equal(t, TestTypeEnglishToVietnamese, test.TestType())
	active, ok := s.Active()
	assert.True(t, ok)
	assert.Equal(t, TestTypeEnglishToVietnamese, active)

	running, ok := s.TypingTest()
	assert.True(t, ok)
	assert.Same(t, test, running)
	_, ok = s.MatchingTest()
	assert.False(t, ok)
}

func TestSession_SwitchingDiscardsUnfinishedTest(t *testing.T) {
	s := newSession(t, 5)

	test, err := s.StartTypingTest(TestTypeVietnameseToEnglish)
	require.NoError(t, err)
	test.Input(test.ExpectedAnswer())
	require.Len(t, s.Outcome(TestTypeVietnameseToEnglish).Correct, 1)

	_, _, err = s.StartMatchingTest()
	require.NoError(t, err)

	assert.Empty(t, s.Outcome(TestTypeVietnameseToEnglish).Correct)
	assert.False(t, s.IsCompleted(TestTypeVietnameseToEnglish))
	active, _ := s.Active()
	assert.Equal(t, TestTypeMatching, active)
}

func TestSession_Exit(t *testing.T) {
	s := newSession(t, 5)
	assert.False(t, s.Exit(true))

	test, err := s.StartTypingTest(TestTypeVietnameseToEnglish)
	require.NoError(t, err)
	test.Reveal()

	assert.False(t, s.Exit(false))
	_, active := s.Active()
	assert.True(t, active)
	assert.Len(t, s.Outcome(TestTypeVietnameseToEnglish).Wrong, 1)

	assert.True(t, s.Exit(true))
	_, active = s.Active()
	assert.False(t, active)
	assert.Empty(t, s.Outcome(TestTypeVietnameseToEnglish).Wrong)
	assert.False(t, s.IsCompleted(TestTypeVietnameseToEnglish))
	assert.Len(t, s.Remaining(), 3)
}

func TestSession_Complete(t *testing.T) {
	t.Run("without a running test", func(t *testing.T) {
		_, _, err := newSession(t, 5).Complete()
		assert.ErrorIs(t, err, ErrNoActiveTest)
	})

	t.Run("before the test has finished", func(t *testing.T) {
		s := newSession(t, 5)
		_, err := s.StartTypingTest(TestTypeVietnameseToEnglish)
		require.NoError(t, err)

		_, _, err = s.Complete()
		assert.ErrorIs(t, err, ErrTestNotFinished)
		assert.False(t, s.IsCompleted(TestTypeVietnameseToEnglish))
	})

	t.Run("a completed test cannot be restarted", func(t *testing.T) {
		s := newSession(t, 5)
		test, err := s.StartTypingTest(TestTypeVietnameseToEnglish)
		require.NoError(t, err)
		answerAll(t, test)

		report, done, err := s.Complete()
		require.NoError(t, err)
		assert.False(t, done)
		assert.Zero(t, report)
		assert.True(t, s.IsCompleted(TestTypeVietnameseToEnglish))
		assert.Equal(t, []TestType{TestTypeEnglishToVietnamese, TestTypeMatching}, s.Remaining())

		_, err = s.StartTypingTest(TestTypeVietnameseToEnglish)
		assert.ErrorIs(t, err, ErrTestCompleted)
		assert.Len(t, s.Outcome(TestTypeVietnameseToEnglish).Correct, 5)
	})
}

func TestSession_FullRun(t *testing.T) {
	s := newSession(t, 5)

	// Matching first: the first source word of the first round gets one wrong attempt.
	matching, stats, err := s.StartMatchingTest()
	require.NoError(t, err)
	assert.Zero(t, stats.Shortfall)
	missed := matching.Sources()[0]
	_, err = matching.SelectSource(0)
	require.NoError(t, err)
	_, err = matching.SelectTarget(wrongTargetIndexOf(t, matching, missed.ID))
	require.NoError(t, err)
	matchAll(t, matching)
	_, done, err := s.Complete()
	require.NoError(t, err)
	assert.False(t, done)

	// The same word is revealed in the first typing test.
	typing, err := s.StartTypingTest(TestTypeVietnameseToEnglish)
	require.NoError(t, err)
	for !typing.Completed() {
		word, _ := typing.Current()
		if word.ID == missed.ID {
			typing.Reveal()
		} else {
			typing.Input(typing.ExpectedAnswer())
		}
		_, err := typing.Advance()
		require.NoError(t, err)
	}
	_, done, err = s.Complete()
	require.NoError(t, err)
	assert.False(t, done)
	_, ok := s.Report()
	assert.False(t, ok)

	typing, err = s.StartTypingTest(TestTypeEnglishToVietnamese)
	require.NoError(t, err)
	answerAll(t, typing)
	report, done, err := s.Complete()
	require.NoError(t, err)
	require.True(t, done)

	assert.Equal(t, 13, report.TotalCorrect)
	assert.Equal(t, 1, report.TotalWrong)
	assert.Equal(t, 93, report.Percent)
	assert.Equal(t, []string{missed.ID}, entryIDs(report.WrongEntries))
	assert.Empty(t, s.Remaining())

	stored, ok := s.Report()
	require.True(t, ok)
	assert.Equal(t, report, stored)

	t.Run("retry starts over with the same vocabulary", func(t *testing.T) {
		s.Retry()

		assert.Equal(t, AllTestTypes, s.Remaining())
		_, ok := s.Report()
		assert.False(t, ok)
		assert.Empty(t, s.Outcome(TestTypeMatching).Wrong)
		assert.Equal(t, newEntries(5), s.Entries())

		typing, err := s.StartTypingTest(TestTypeVietnameseToEnglish)
		require.NoError(t, err)
		answerAll(t, typing)
		_, _, err = s.Complete()
		require.NoError(t, err)
	})
}
