package repository

import (
	"context"
	"fmt"

	"github.com/go-kivik/kivik/v4"
	_ "github.com/go-kivik/kivik/v4/couchdb"
)

// Connect opens a CouchDB client for url and makes sure dbName exists.
// The caller owns the returned client and must Close it on shutdown.
func Connect(ctx context.Context, url, dbName string) (*kivik.Client, error) {
	client, err := kivik.New("couch", url)
	if err != nil {
		return nil, fmt.Errorf("failed to create couchdb client: %w", err)
	}

	exists, err := client.DBExists(ctx, dbName)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to check database existence: %w", err)
	}

	if !exists {
		if err := client.CreateDB(ctx, dbName); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create database %s: %w", dbName, err)
		}
	}

	return client, nil
}
