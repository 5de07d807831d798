package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

func TestOutcome(t *testing.T) {
	apple := vocabulary.Entry{ID: "1", English: "apple", Vietnamese: "quả táo"}
	book := vocabulary.Entry{ID: "2", English: "book", Vietnamese: "sách"}

	tests := []struct {
		name        string
		record      func(t *testing.T, o *Outcome)
		wantCorrect []string
		wantWrong   []string
	}{
		{
			name:        "nothing recorded",
			record:      func(t *testing.T, o *Outcome) {},
			wantCorrect: []string{},
			wantWrong:   []string{},
		},
		{
			name: "correct then wrong stays correct",
			record: func(t *testing.T, o *Outcome) {
				assert.True(t, o.RecordCorrect(apple))
				assert.False(t, o.RecordWrong(apple))
			},
			wantCorrect: []string{"1"},
			wantWrong:   []string{},
		},
		{
			name: "wrong then correct stays wrong",
			record: func(t *testing.T, o *Outcome) {
				assert.True(t, o.RecordWrong(apple))
				assert.False(t, o.RecordCorrect(apple))
			},
			wantCorrect: []string{},
			wantWrong:   []string{"1"},
		},
		{
			name: "duplicates are ignored",
			record: func(t *testing.T, o *Outcome) {
				o.RecordCorrect(book)
				o.RecordCorrect(book)
				o.RecordWrong(apple)
				o.RecordWrong(apple)
			},
			wantCorrect: []string{"2"},
			wantWrong:   []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOutcome()
			tt.record(t, o)

			assert.Equal(t, tt.wantCorrect, entryIDs(o.Correct))
			assert.Equal(t, tt.wantWrong, entryIDs(o.Wrong))
			for _, id := range tt.wantCorrect {
				assert.True(t, o.IsCorrect(id))
				assert.False(t, o.IsWrong(id))
			}
			for _, id := range tt.wantWrong {
				assert.True(t, o.IsWrong(id))
				assert.False(t, o.IsCorrect(id))
			}
		})
	}
}
