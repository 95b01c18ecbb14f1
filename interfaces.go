package client

import (
	"context"
	"io"
	"time"
)

// Info provides metadata about the client
type Info interface {
	Name() string
	Version() string
}

// Documents handles document upload, status and deletion
type Documents interface {
	Upload(ctx context.Context, url string) (*UploadResponse, error)
	UploadFile(ctx context.Context, r io.Reader) (*UploadResponse, error)
	StatusOne(ctx context.Context, uuid string) (*DocumentStatus, error)
	StatusMany(ctx context.Context, uuids []string) ([]DocumentStatus, error)
	Delete(ctx context.Context, uuid string) (bool, error)
	WaitForDocument(ctx context.Context, uuid string, pollInterval time.Duration) (*DocumentStatus, error)
}

// Sessions handles viewer session creation
type Sessions interface {
	CreateSession(ctx context.Context, uuid string, opts Params) (*SessionResponse, error)
	ViewURL(sessionID string) string
}

// Downloader builds download URLs and fetches document content
type Downloader interface {
	DownloadURL(uuid string, opts Params) string
	ThumbnailURL(uuid string, opts Params) string
	Text(ctx context.Context, uuid string) (string, error)
	FetchDocument(ctx context.Context, uuid string, opts Params, dst io.Writer) error
	FetchThumbnail(ctx context.Context, uuid string, opts Params, dst io.Writer) error
}

// Client combines all crocodoc operations
type Client interface {
	Info
	Documents
	Sessions
	Downloader
}
