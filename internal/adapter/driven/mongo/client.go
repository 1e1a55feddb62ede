// Package mongo implements the database connection port on the MongoDB driver.
// The site stores nothing in MongoDB yet; the adapter only establishes and
// verifies the connection.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/tfccofficial/tfcc/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.DatabaseConnector = (*Connector)(nil)
	_ driven.Database          = (*Client)(nil)
)

const appName = "tfcc"

// Connector dials MongoDB from a connection string.
type Connector struct {
	uri                    string
	serverSelectionTimeout time.Duration
}

// NewConnector creates a Connector for the given connection string. The
// server selection timeout bounds how long Connect waits for a reachable server.
func NewConnector(uri string, serverSelectionTimeout time.Duration) *Connector {
	return &Connector{
		uri:                    uri,
		serverSelectionTimeout: serverSelectionTimeout,
	}
}

// Connect creates a client and pings the primary. The driver connects lazily,
// so the ping is what proves the server is reachable. On ping failure the
// client is disconnected before returning.
func (c *Connector) Connect(ctx context.Context) (driven.Database, error) {
	opts := options.Client().
		ApplyURI(c.uri).
		SetAppName(appName)
	if c.serverSelectionTimeout > 0 {
		opts.SetServerSelectionTimeout(c.serverSelectionTimeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Client{client: client}, nil
}

// Client is a connected MongoDB client.
type Client struct {
	client *mongo.Client
}

// Disconnect closes all pooled connections.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect mongo: %w", err)
	}
	return nil
}
