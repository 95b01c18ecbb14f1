package client

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall_RecordsRequestMetrics(t *testing.T) {
	cli, srv := newTestClient(t)
	id := srv.AddDocument("")

	ok200 := requestsTotal.WithLabelValues(string(OperationDelete), "200")
	bad400 := requestsTotal.WithLabelValues(string(OperationDelete), "400")
	before200 := testutil.ToFloat64(ok200)
	before400 := testutil.ToFloat64(bad400)

	_, err := cli.Delete(context.Background(), id)
	require.NoError(t, err)
	_, err = cli.Delete(context.Background(), id)
	require.Error(t, err)

	assert.Equal(t, before200+1, testutil.ToFloat64(ok200))
	assert.Equal(t, before400+1, testutil.ToFloat64(bad400))
}
