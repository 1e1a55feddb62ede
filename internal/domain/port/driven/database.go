package driven

import "context"

// Database is an established connection to the application database. Nothing
// queries it yet; the holder only has to release it on shutdown.
type Database interface {
	Disconnect(ctx context.Context) error
}

// DatabaseConnector establishes the application database connection. Connect
// returns only after the database answered a ping or the attempt failed.
type DatabaseConnector interface {
	Connect(ctx context.Context) (Database, error)
}
