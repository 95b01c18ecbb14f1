package client

import (
	"context"
	"encoding/json"
)

// CreateSession creates a viewer session for uuid. Sessions expire 60 minutes
// after creation. opts are passed through unchanged; see SessionOptions for
// the known keys.
func (c *client) CreateSession(ctx context.Context, uuid string, opts Params) (*SessionResponse, error) {
	params := opts.Merge(Params{ParamUUID: uuid})

	body, err := c.call(ctx, MethodPost, EndpointSessionCreate, OperationCreateSession, params)
	if err != nil {
		return nil, err
	}

	var result SessionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errRequest(OperationCreateSession, err)
	}
	return &result, nil
}

// ViewURL returns the viewer URL for a session. No request is made.
func (c *client) ViewURL(sessionID string) string {
	return c.viewBaseURL + sessionID
}
