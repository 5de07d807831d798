package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_cli "github.com/vocabquiz/vocabquiz/internal/mocks/cli"
)

func TestInteractiveQuizCLI_Run(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m *mock_cli.MockSession)
		wantErr bool
	}{
		{
			name: "runs sessions until the end",
			setup: func(m *mock_cli.MockSession) {
				gomock.InOrder(
					m.EXPECT().Session(gomock.Any()).Return(nil).Times(2),
					m.EXPECT().Session(gomock.Any()).Return(errEnd),
				)
			},
		},
		{
			name: "stops at an error",
			setup: func(m *mock_cli.MockSession) {
				gomock.InOrder(
					m.EXPECT().Session(gomock.Any()).Return(nil),
					m.EXPECT().Session(gomock.Any()).Return(errors.New("broken")),
				)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			session := mock_cli.NewMockSession(ctrl)
			tt.setup(session)

			cli := newInteractiveQuizCLI(strings.NewReader(""), &bytes.Buffer{})
			err := cli.Run(context.Background(), session)
			if tt.wantErr {
				assert.ErrorContains(t, err, "broken")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInteractiveQuizCLI_readLine(t *testing.T) {
	cli := newInteractiveQuizCLI(strings.NewReader("first\r\nsecond\nlast"), &bytes.Buffer{})

	for _, want := range []string{"first", "second", "last"} {
		got, err := cli.readLine()
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := cli.readLine()
	assert.ErrorIs(t, err, errEnd)
}

func TestInteractiveQuizCLI_confirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: " YES \n", want: true},
		{input: "n\n", want: false},
		{input: "\n", want: false},
		{input: "maybe\n", want: false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var stdout bytes.Buffer
			cli := newInteractiveQuizCLI(strings.NewReader(tt.input), &stdout)

			got, err := cli.confirm("Delete?")
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Delete? [y/N]: ", stdout.String())
		})
	}
}
