package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPError(t *testing.T) {
	err := errStatus(OperationDelete, 400, []byte(`{"error":"invalid uuid"}`))
	assert.EqualError(t, err, `delete failed with HTTP 400: {"error":"invalid uuid"}`)

	wrapped := fmt.Errorf("cleanup: %w", err)
	assert.True(t, IsHTTPStatus(wrapped, 400))
	assert.False(t, IsHTTPStatus(wrapped, 401))
	assert.False(t, IsHTTPStatus(fmt.Errorf("plain"), 400))

	assert.EqualError(t, errStatus(OperationText, 502, nil), "text failed with HTTP 502")
}
