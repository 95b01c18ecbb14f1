package client

import "time"

const (
	ServiceName       = "crocodoc"
	DefaultHost       = "crocodoc.com"
	APIVersion        = "v2"
	DefaultBaseURL    = "https://" + DefaultHost + "/api/" + APIVersion
	DefaultParamName  = "token"
	DefaultTimeout    = 60 * time.Second
	ProcessingTimeout = 5 * time.Minute
	DefaultPollEvery  = 2 * time.Second
)

// API endpoints, relative to the base URL.
const (
	EndpointUpload          = "document/upload"
	EndpointStatus          = "document/status"
	EndpointDelete          = "document/delete"
	EndpointSessionCreate   = "session/create"
	EndpointDownloadDoc     = "download/document"
	EndpointDownloadThumb   = "download/thumbnail"
	EndpointDownloadText    = "download/text"
	viewPath                = "/view/"
	deleteSucceededResponse = "true"
	redactedValue           = "REDACTED"
)

// Request parameter names.
const (
	ParamURL   = "url"
	ParamUUID  = "uuid"
	ParamUUIDs = "uuids"
)
