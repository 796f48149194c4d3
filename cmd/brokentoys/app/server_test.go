package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	brokentoys "github.com/caio/go-brokentoys"
	"github.com/caio/go-brokentoys/cmd/brokentoys/app/options"
)

const problem = `10
9 7 2 1 9 4 2 9 5 8
4
1 2 6 7
9 1 10
9 2 3 3
100 0
`

func TestRun(t *testing.T) {
	for _, workers := range []int{1, 3} {
		opts := options.NewOptions()
		opts.Workers = workers

		var out bytes.Buffer
		err := Run(context.Background(), opts, strings.NewReader(problem), &out)
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, "1\n4\n-1\n10\n", out.String(), "workers=%d", workers)
	}
}

func TestRunStrict(t *testing.T) {
	opts := options.NewOptions()
	opts.Strict = true

	var out bytes.Buffer
	err := Run(context.Background(), opts, strings.NewReader(problem), &out)
	assert.ErrorIs(t, err, brokentoys.ErrInvalidQuery)
	assert.Equal(t, "1\n4\n-1\n10\n", out.String(), "answers are written before failing")
}

func TestRunMalformed(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), options.NewOptions(), strings.NewReader("2\n1"), &out)
	assert.ErrorIs(t, err, brokentoys.ErrMalformedProblem)
	assert.Empty(t, out.String())

	err = Run(context.Background(), options.NewOptions(), strings.NewReader("1\n-5\n0\n"), &out)
	assert.ErrorIs(t, err, brokentoys.ErrInvalidPrice)
}

func TestCommandStdio(t *testing.T) {
	cmd := NewBrokenToysCommand()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(problem))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--workers", "2"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "1\n4\n-1\n10\n", out.String())
}

func TestCommandFiles(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "toys.txt")
	output := filepath.Join(dir, "answers.txt")
	config := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(input, []byte(problem), 0o644))
	require.NoError(t, os.WriteFile(config, []byte("input: "+input+"\nworkers: 1\nstrict: true\n"), 0o644))

	cmd := NewBrokenToysCommand()
	cmd.SetArgs([]string{"--config", config, "--output", output, "--strict=false"})
	require.NoError(t, cmd.Execute())

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "1\n4\n-1\n10\n", string(got))
}

func TestCommandInvalidOptions(t *testing.T) {
	cmd := NewBrokenToysCommand()
	cmd.SetIn(strings.NewReader(problem))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--workers", "0"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid options")
	assert.Contains(t, err.Error(), "--workers")
}
