package db

import (
	"context"
	"fmt"

	"fedtools/pkg/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient wraps the MongoDB connection used to archive retrieved
// documents. Documents are keyed by source URL so re-running a series
// upserts instead of duplicating.
type MongoClient struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoClient creates a Mongo-backed document archive.
func NewMongoClient(connectionString, databaseName, collectionName string) (*MongoClient, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(connectionString))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}
	return &MongoClient{
		client:     client,
		collection: client.Database(databaseName).Collection(collectionName),
	}, nil
}

// Connect verifies connectivity to MongoDB.
func (c *MongoClient) Connect(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

// Close closes the MongoDB connection.
func (c *MongoClient) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// SaveDocument upserts one retrieved document, keyed by its source URL.
func (c *MongoClient) SaveDocument(ctx context.Context, doc *domain.Document) error {
	filter := bson.M{"url": doc.URL}
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)

	if _, err := c.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to save document %s: %w", doc.URL, err)
	}
	return nil
}

// ArchivedURLs returns the set of document URLs already archived for a
// series, so callers can report what a run added.
func (c *MongoClient) ArchivedURLs(ctx context.Context, series string) (map[string]bool, error) {
	cursor, err := c.collection.Find(ctx, bson.M{"series": series},
		options.Find().SetProjection(bson.M{"url": 1, "_id": 0}))
	if err != nil {
		return nil, fmt.Errorf("failed to query archived URLs: %w", err)
	}
	defer cursor.Close(ctx)

	urls := make(map[string]bool)
	for cursor.Next(ctx) {
		var row struct {
			URL string `bson:"url"`
		}
		if err := cursor.Decode(&row); err != nil {
			continue
		}
		if row.URL != "" {
			urls[row.URL] = true
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return urls, nil
}
