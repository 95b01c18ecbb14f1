package client

import (
	"context"
	"encoding/json"
	"io"
	"strings"
)

// Upload asks the service to fetch and convert the document at url.
// Conversion is asynchronous; poll StatusOne or WaitForDocument afterwards.
// A failed upload may still return 200 with Error set.
func (c *client) Upload(ctx context.Context, url string) (*UploadResponse, error) {
	body, err := c.call(ctx, MethodPost, EndpointUpload, OperationUpload, Params{ParamURL: url})
	if err != nil {
		return nil, err
	}

	var result UploadResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errRequest(OperationUpload, err)
	}
	return &result, nil
}

// UploadFile is not implemented by this client and never touches the network.
func (c *client) UploadFile(ctx context.Context, r io.Reader) (*UploadResponse, error) {
	return nil, ErrUploadNotSupported
}

// StatusOne returns the status of a single document. Unknown ids come back
// with Error set rather than as a Go error.
func (c *client) StatusOne(ctx context.Context, uuid string) (*DocumentStatus, error) {
	statuses, err := c.status(ctx, []string{uuid})
	if err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		return nil, ErrEmptyStatus
	}
	return &statuses[0], nil
}

// StatusMany returns the status of every document in one round trip.
func (c *client) StatusMany(ctx context.Context, uuids []string) ([]DocumentStatus, error) {
	return c.status(ctx, uuids)
}

func (c *client) status(ctx context.Context, uuids []string) ([]DocumentStatus, error) {
	body, err := c.call(ctx, MethodGet, EndpointStatus, OperationStatus, Params{ParamUUIDs: strings.Join(uuids, ",")})
	if err != nil {
		return nil, err
	}

	var result []DocumentStatus
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errRequest(OperationStatus, err)
	}
	return result, nil
}

// Delete removes a document. Deleting an unknown or already deleted
// document yields an *HTTPError.
func (c *client) Delete(ctx context.Context, uuid string) (bool, error) {
	body, err := c.call(ctx, MethodPost, EndpointDelete, OperationDelete, Params{ParamUUID: uuid})
	if err != nil {
		return false, err
	}
	return string(body) == deleteSucceededResponse, nil
}
