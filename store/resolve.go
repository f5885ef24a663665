// path: store/resolve.go
package store

import (
	"context"
	"log"
	"strings"
)

// Resolve picks the storage backend and returns a human-readable reason.
// Precedence: an explicit mode wins; in auto mode a configured Mongo URI
// promotes the database backend, otherwise the flat file is used.
func Resolve(ctx context.Context, mode, mongoURI, mongoDB, filePath string) (Store, string, error) {
	mongoURI = strings.TrimSpace(mongoURI)

	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "file":
		st, err := NewFileStore(filePath)
		return st, "STORE_MODE=file", err
	case "mongo":
		if mongoURI == "" {
			log.Printf("store: WARNING STORE_MODE=mongo but MONGO_URI empty; falling back to file")
			st, err := NewFileStore(filePath)
			return st, "mongo URI missing, fallback to file", err
		}
		st, err := NewMongoStore(ctx, mongoURI, mongoDB)
		return st, "STORE_MODE=mongo", err
	default: // auto
		if mongoURI != "" {
			st, err := NewMongoStore(ctx, mongoURI, mongoDB)
			return st, "auto: MONGO_URI present", err
		}
		st, err := NewFileStore(filePath)
		return st, "auto: fallback to file", err
	}
}
