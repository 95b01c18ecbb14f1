package client

import "strconv"

// Method enumerates the HTTP verbs the API accepts.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// DocumentState enumerates conversion states reported by document/status.
type DocumentState string

const (
	StateQueued     DocumentState = "QUEUED"
	StateProcessing DocumentState = "PROCESSING"
	StateDone       DocumentState = "DONE"
	StateError      DocumentState = "ERROR"
)

// Finished reports whether the document will not change state anymore.
func (s DocumentState) Finished() bool {
	return s == StateDone || s == StateError
}

// Operation names an API call in errors, logs and metrics.
type Operation string

const (
	OperationUpload         Operation = "upload"
	OperationStatus         Operation = "status"
	OperationDelete         Operation = "delete"
	OperationCreateSession  Operation = "create session"
	OperationText           Operation = "text"
	OperationFetchDocument  Operation = "fetch document"
	OperationFetchThumbnail Operation = "fetch thumbnail"
	OperationWaitDocument   Operation = "waiting for document"
)

// UploadResponse is returned by document/upload.
type UploadResponse struct {
	UUID  string `json:"uuid"`            // Document identifier for every later call
	Error string `json:"error,omitempty"` // In-band failure reason, empty on success
}

// DocumentStatus is one element of the document/status array.
type DocumentStatus struct {
	UUID     string        `json:"uuid"`
	Status   DocumentState `json:"status,omitempty"`
	Viewable bool          `json:"viewable"`
	Error    string        `json:"error,omitempty"` // e.g. "invalid uuid" or "password protected"
}

// SessionResponse is returned by session/create.
type SessionResponse struct {
	Session string `json:"session"`
}

// SessionOptions is a typed view over the session/create parameters.
// Zero values are omitted so the server defaults apply.
type SessionOptions struct {
	Editable      bool
	User          string // "<id>,<name>", see SessionUser
	Filter        string // all, none, or comma separated user ids
	Admin         bool
	Downloadable  bool
	CopyProtected bool
	Demo          bool
}

// Params converts the options into request parameters.
func (o SessionOptions) Params() Params {
	p := Params{}
	p.setTrue("editable", o.Editable)
	p.setNonEmpty("user", o.User)
	p.setNonEmpty("filter", o.Filter)
	p.setTrue("admin", o.Admin)
	p.setTrue("downloadable", o.Downloadable)
	p.setTrue("copyprotected", o.CopyProtected)
	p.setTrue("demo", o.Demo)
	return p
}

// SessionUser formats the user parameter expected by session/create.
func SessionUser(id int32, name string) string {
	return strconv.FormatInt(int64(id), 10) + "," + name
}

// DownloadOptions is a typed view over the download/document parameters.
type DownloadOptions struct {
	PDF       bool
	Filename  string
	Annotated bool
	Filter    string
}

// Params converts the options into request parameters.
func (o DownloadOptions) Params() Params {
	p := Params{}
	p.setTrue("pdf", o.PDF)
	p.setNonEmpty("filename", o.Filename)
	p.setTrue("annotated", o.Annotated)
	p.setNonEmpty("filter", o.Filter)
	return p
}

// ThumbnailOptions is a typed view over the download/thumbnail parameters.
type ThumbnailOptions struct {
	Size string // {width}x{height}, e.g. 300x250
}

// Params converts the options into request parameters.
func (o ThumbnailOptions) Params() Params {
	p := Params{}
	p.setNonEmpty("size", o.Size)
	return p
}
