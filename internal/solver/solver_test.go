package solver

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"expense_report/internal/config"
	"expense_report/internal/entries"
	"expense_report/internal/input"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubSource struct {
	content string
	err     error
	closed  bool
}

func (s *stubSource) Open(_ context.Context, _ string) (io.ReadCloser, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &trackingCloser{Reader: strings.NewReader(s.content), closed: &s.closed}, nil
}

type trackingCloser struct {
	io.Reader
	closed *bool
}

func (c *trackingCloser) Close() error {
	*c.closed = true
	return nil
}

func TestRunWritesProduct(t *testing.T) {
	source := &stubSource{content: "1721\n979\n366\n299\n675\n1456\n"}
	var out bytes.Buffer

	err := New(source, zap.NewNop()).Run(context.Background(), &out, "day1.txt", 2020)

	require.NoError(t, err)
	assert.Equal(t, "514579\n", out.String())
	assert.True(t, source.closed)
}

func TestRunWritesNothingOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		source  *stubSource
		target  int64
		wantErr error
	}{
		{"no match", &stubSource{content: ""}, 30, entries.ErrNoEntriesFound},
		{"open failure", &stubSource{err: os.ErrNotExist}, 30, os.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			err := New(tt.source, zap.NewNop()).Run(context.Background(), &out, "day1.txt", tt.target)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, out.String())
		})
	}
}

func TestSolveDecodeFailure(t *testing.T) {
	source := &stubSource{content: "10\nfish\n20\n"}

	_, err := New(source, zap.NewNop()).Solve(context.Background(), "day1.txt", 30)

	var decodeErr *entries.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "fish", decodeErr.Text)
	assert.True(t, source.closed)
}

func TestSolveWithFileOpener(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day1.txt")
	require.NoError(t, os.WriteFile(path, []byte("10\n20\nfish"), 0o644))
	opener := input.NewOpener(config.Default(), zap.NewNop())

	pair, err := New(opener, zap.NewNop()).Solve(context.Background(), path, 30)
	require.NoError(t, err)
	assert.Equal(t, entries.Pair{Entry1: 10, Entry2: 20, Target: 30}, pair)

	_, err = New(opener, zap.NewNop()).Solve(context.Background(), filepath.Join(dir, "missing.txt"), 30)
	var openErr *input.OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestSolveLogsOutcomeAtInfo(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := New(&stubSource{content: "10\n20\n"}, zap.New(core))

	_, err := s.Solve(context.Background(), "day1.txt", 30)
	require.NoError(t, err)

	found := logs.FilterMessage("pair found").All()
	require.Len(t, found, 1)
	assert.Equal(t, zapcore.InfoLevel, found[0].Level)
	assert.Equal(t, "solver", found[0].LoggerName)
	assert.Equal(t, int64(10), found[0].ContextMap()["entry1"])
	assert.Equal(t, int64(20), found[0].ContextMap()["entry2"])

	_, err = s.Solve(context.Background(), "day1.txt", 99)
	require.Error(t, err)
	failed := logs.FilterMessage("search failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
}
