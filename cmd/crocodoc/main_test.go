package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	client "github.com/hsn0918/crocodoc-client"
	"github.com/hsn0918/crocodoc-client/crocodoctest"
	"github.com/hsn0918/crocodoc-client/internal/generator"
)

const testToken = "cli-token"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CROCODOC_TOKEN", "")

	cmd := newRootCmd()
	var out, logs bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDownloadCmd_PrintsURL(t *testing.T) {
	out, err := run(t, "download", "abc", "--token", testToken, "--pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://crocodoc.com/api/v2/download/document?pdf=true&token=cli-token&uuid=abc\n", out)
}

func TestThumbnailCmd_PrintsURL(t *testing.T) {
	out, err := run(t, "thumbnail", "abc", "--token", testToken, "--size", "300x250")
	require.NoError(t, err)
	assert.Equal(t, "https://crocodoc.com/api/v2/download/thumbnail?size=300x250&token=cli-token&uuid=abc\n", out)
}

func TestViewCmd_NoTokenNeeded(t *testing.T) {
	out, err := run(t, "view", "SESSION")
	require.NoError(t, err)
	assert.Equal(t, "https://crocodoc.com/view/SESSION\n", out)
}

func TestCmd_MissingToken(t *testing.T) {
	_, err := run(t, "status", "abc")
	require.ErrorIs(t, err, client.ErrEmptyToken)
}

func TestUploadStatusDeleteFlow(t *testing.T) {
	srv := crocodoctest.NewServer(testToken)
	defer srv.Close()
	base := []string{"--token", testToken, "--base-url", srv.BaseURL()}

	out, err := run(t, append([]string{"upload", "http://example.com/a.doc", "http://example.com/b.doc", "--wait", "--interval", "10ms"}, base...)...)
	require.NoError(t, err)

	var results []uploadResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NotEmpty(t, r.UUID)
		require.NotNil(t, r.Status)
		assert.Equal(t, client.StateDone, r.Status.Status)
	}

	out, err = run(t, append([]string{"status", results[0].UUID, results[1].UUID}, base...)...)
	require.NoError(t, err)
	var statuses []client.DocumentStatus
	require.NoError(t, json.Unmarshal([]byte(out), &statuses))
	assert.Len(t, statuses, 2)

	out, err = run(t, append([]string{"delete", results[0].UUID}, base...)...)
	require.NoError(t, err)
	assert.Equal(t, "deleted=true uuid="+results[0].UUID+"\n", out)

	failLog := filepath.Join(t.TempDir(), "fail.log")
	_, err = run(t, append([]string{"delete", results[0].UUID, "--fail-log", failLog}, base...)...)
	require.Error(t, err)
	logged, readErr := os.ReadFile(failLog)
	require.NoError(t, readErr)
	assert.Contains(t, string(logged), "command=delete")
	assert.Contains(t, string(logged), "target="+results[0].UUID)
}

func TestUploadCmd_FileNotSupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF"), 0o644))

	_, err := run(t, "upload", "--file", path, "--token", testToken)
	require.ErrorIs(t, err, client.ErrUploadNotSupported)
}

func TestSessionAndTextCmds(t *testing.T) {
	srv := crocodoctest.NewServer(testToken)
	defer srv.Close()
	id := srv.AddDocument("one\ftwo")
	base := []string{"--token", testToken, "--base-url", srv.BaseURL()}

	out, err := run(t, append([]string{"session", id, "--user", "1,Luke", "--editable", "--view"}, base...)...)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "http://127.0.0.1"), out)
	assert.Contains(t, out, "/view/")

	out, err = run(t, append([]string{"text", id}, base...)...)
	require.NoError(t, err)
	assert.Equal(t, "one\ftwo", out)

	dst := filepath.Join(t.TempDir(), "doc.pdf")
	_, err = run(t, append([]string{"download", id, "-o", dst}, base...)...)
	require.NoError(t, err)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 "+id, string(data))
}

func TestInstallCmd(t *testing.T) {
	root := t.TempDir()

	_, err := run(t, "install", "--api-token", "abc", "--dir", root)
	require.NoError(t, err)

	out, err := run(t, "status", "x", "--config", filepath.Join(root, generator.ConfigFile), "--base-url", "http://127.0.0.1:1/api/v2", "--timeout", "100ms")
	require.Error(t, err, out)
	assert.NotErrorIs(t, err, client.ErrEmptyToken)
}
