// path: store/mongo.go
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pestreport/models"
)

var _ Store = (*MongoStore)(nil)

const mongoOpTimeout = 8 * time.Second

// MongoStore is the swap-in backend for deployments that outgrow the flat
// file. Same contract as FileStore; append order is preserved by _id.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	dctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	c, err := mongo.Connect(dctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := c.Ping(dctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &MongoStore{col: c.Database(dbName).Collection("submissions")}, nil
}

func (s *MongoStore) Append(rec models.Submission) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()
	if _, err := s.col.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("mongo insert: %w", err)
	}
	return nil
}

func (s *MongoStore) ReadAll() ([]models.Submission, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	findOpts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := s.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cur.Close(ctx)

	recs := []models.Submission{}
	for cur.Next(ctx) {
		var rec models.Submission
		if err := cur.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: decode submission: %v", ErrCorrupt, err)
		}
		recs = append(recs, rec)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("mongo cursor: %w", err)
	}
	return recs, nil
}

func (s *MongoStore) ReplaceAll(recs []models.Submission) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOpTimeout)
	defer cancel()

	if _, err := s.col.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("mongo clear: %w", err)
	}
	if len(recs) == 0 {
		return nil
	}
	docs := make([]interface{}, len(recs))
	for i, rec := range recs {
		docs[i] = rec
	}
	if _, err := s.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("mongo rewrite: %w", err)
	}
	return nil
}
