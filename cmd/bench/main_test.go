package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intersection-benchmark/internal/intersection"
)

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{
			name:     "zero duration",
			duration: 0,
			want:     "0s",
		},
		{
			name:     "one second",
			duration: 1 * time.Second,
			want:     "1s",
		},
		{
			name:     "29 minutes 59 seconds",
			duration: 29*time.Minute + 59*time.Second,
			want:     "29m59s",
		},
		{
			name:     "159 minutes 59 seconds",
			duration: 159*time.Minute + 59*time.Second,
			want:     "159m59s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatElapsed(tt.duration)
			assert.Equal(t, tt.want, got, "formatElapsed should return expected format for %v", tt.duration)
		})
	}
}

func TestBenchCmd(t *testing.T) {
	output := filepath.Join(t.TempDir(), "results.tsv")

	var out bytes.Buffer
	cmd := newBenchCmd(&out)
	cmd.SetArgs([]string{"--size-a", "10", "--sizes-b", "5,50", "-n", "3", "--warmup", "1", "--seed", "4", "-o", output})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Benchmark 1/2: |A|=10, |B|=5")
	assert.Contains(t, out.String(), "Benchmark 2/2: |A|=10, |B|=50")
	assert.Contains(t, out.String(), "Output file: "+output)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "10\t5\t"))
	assert.True(t, strings.HasPrefix(lines[2], "10\t50\t"))
}

func TestBenchCmd_InvalidSizes(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "empty list A",
			args:    []string{"--size-a", "0", "--sizes-b", "5"},
			wantErr: "list A must have at least 1 element",
		},
		{
			name:    "too few iterations",
			args:    []string{"--sizes-b", "5", "-n", "1"},
			wantErr: "at least 2 iterations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newBenchCmd(io.Discard)
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.ErrorIs(t, err, intersection.ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
