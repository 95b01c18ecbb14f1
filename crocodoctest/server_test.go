package crocodoctest

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_RejectsBadToken(t *testing.T) {
	srv := NewServer("secret")
	defer srv.Close()

	resp, err := http.Get(srv.BaseURL() + "/document/status?uuids=abc&token=wrong")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_WrongVerbIsMethodNotAllowed(t *testing.T) {
	srv := NewServer("secret")
	defer srv.Close()

	resp, err := http.Get(srv.BaseURL() + "/document/upload?token=secret&url=x")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServer_StatusRejectsPost(t *testing.T) {
	srv := NewServer("secret")
	defer srv.Close()

	resp, err := http.PostForm(srv.BaseURL()+"/document/status", url.Values{"token": {"secret"}, "uuids": {"a"}})
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServer_UploadRecordsSource(t *testing.T) {
	srv := NewServer("secret")
	defer srv.Close()

	resp, err := http.PostForm(srv.BaseURL()+"/document/upload", url.Values{
		"token": {"secret"},
		"url":   {"http://www.example.com/test.doc"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"uuid"`)

	last, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/api/v2/document/upload", last.Path)
	assert.Equal(t, "http://www.example.com/test.doc", last.Params.Get("url"))
	assert.Equal(t, "http://www.example.com/test.doc", last.PostForm.Get("url"))
	assert.Empty(t, last.Query)
	assert.Equal(t, "application/x-www-form-urlencoded", last.ContentType)
}

func TestServer_CustomParamName(t *testing.T) {
	srv := NewServerWithParam("secret", "api_key")
	defer srv.Close()
	id := srv.AddDocument("hello")

	resp, err := http.Get(srv.BaseURL() + "/download/text?api_key=secret&uuid=" + id)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(string(body), "hello"))
}
