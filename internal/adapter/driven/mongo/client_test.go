package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnector_InvalidURI(t *testing.T) {
	c := NewConnector("not-a-mongo-uri", time.Second)

	db, err := c.Connect(context.Background())

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "create mongo client")
}

// TestConnector_Unreachable points the connector at a closed loopback port and
// verifies Connect fails within the server selection timeout instead of hanging.
func TestConnector_Unreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for server selection timeout")
	}

	c := NewConnector("mongodb://127.0.0.1:1/tfcc?connectTimeoutMS=200", 300*time.Millisecond)

	start := time.Now()
	db, err := c.Connect(context.Background())

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "ping mongo")
	assert.Less(t, time.Since(start), 5*time.Second)
}
