package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "nested", "out.txt")

	err := writeToFile(dst, func(w io.Writer) error {
		_, err := io.WriteString(w, "page one\fpage two")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "page one\fpage two", string(data))
}

func TestWriteToFile_WriteErrorWins(t *testing.T) {
	boom := errors.New("boom")
	err := writeToFile(filepath.Join(t.TempDir(), "out.txt"), func(io.Writer) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestInstallCompletion_ListsFlags(t *testing.T) {
	root := newRootCmd()
	install, _, err := root.Find([]string{"install"})
	require.NoError(t, err)

	flags, directive := positionalAlwaysFlags(install, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Contains(t, flags, "--api-token")
	assert.Contains(t, flags, "--force")
	assert.Contains(t, flags, "--token")
}
