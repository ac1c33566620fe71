// Oscarmatch - Smart Match recommendations for Oscar Best Picture nominees
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/oscarmatch

package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tomtom215/oscarmatch/internal/metrics"
	"github.com/tomtom215/oscarmatch/internal/models"
)

const driverMongo = "mongo"

// MongoOptions configures the MongoDB catalog.
type MongoOptions struct {
	URI        string
	Database   string
	Collection string

	// ConnectTimeout bounds the initial ping.
	ConnectTimeout time.Duration
}

// Mongo is a catalog backed by a MongoDB collection of movie documents.
type Mongo struct {
	client *mongo.Client
	col    *mongo.Collection
}

// NewMongo connects, pings and ensures the oscar_year index exists.
func NewMongo(ctx context.Context, opts MongoOptions) (*Mongo, error) {
	if opts.URI == "" {
		return nil, errors.New("mongo URI is required")
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = 10 * time.Second
	}

	clientOpts := options.Client().ApplyURI(opts.URI)
	if strings.HasPrefix(opts.URI, "mongodb+srv") {
		clientOpts.SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	}

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background()) //nolint:errcheck // ping error is returned
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	m := NewMongoFromClient(client, opts.Database, opts.Collection)
	if _, err := m.col.Indexes().CreateOne(pingCtx, mongo.IndexModel{
		Keys: bson.D{{Key: "oscar_year", Value: 1}},
	}); err != nil {
		_ = client.Disconnect(context.Background()) //nolint:errcheck // index error is returned
		return nil, fmt.Errorf("failed to create oscar_year index: %w", err)
	}
	return m, nil
}

// NewMongoFromClient wraps an existing client.
func NewMongoFromClient(client *mongo.Client, database, collection string) *Mongo {
	if database == "" {
		database = "oscarmatch"
	}
	if collection == "" {
		collection = "movies"
	}
	return &Mongo{client: client, col: client.Database(database).Collection(collection)}
}

func nomineeQuery(filter Filter) bson.M {
	q := bson.M{"is_best_picture_nominee": true}
	years := bson.M{}
	if filter.FromYear != 0 {
		years["$gte"] = filter.FromYear
	}
	if filter.ToYear != 0 {
		years["$lte"] = filter.ToYear
	}
	if len(years) > 0 {
		q["oscar_year"] = years
	}
	return q
}

// ListNominees implements Catalog.
func (m *Mongo) ListNominees(ctx context.Context, filter Filter) (movies []models.Movie, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogQuery(driverMongo, "list_nominees", time.Since(start), err) }()

	opts := options.Find().SetSort(bson.D{{Key: "vote_count", Value: -1}, {Key: "_id", Value: 1}})
	cur, err := m.col.Find(ctx, nomineeQuery(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query nominees: %w", err)
	}

	movies = make([]models.Movie, 0)
	if err := cur.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode nominees: %w", err)
	}
	// Apply the shared ordering for missing counts.
	SortByVotes(movies)
	return movies, nil
}

// Get implements Catalog.
func (m *Mongo) Get(ctx context.Context, id string) (*models.Movie, error) {
	start := time.Now()

	var movie models.Movie
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if errors.Is(err, mongo.ErrNoDocuments) {
		metrics.RecordCatalogQuery(driverMongo, "get", time.Since(start), nil)
		return nil, ErrNotFound
	}
	metrics.RecordCatalogQuery(driverMongo, "get", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return &movie, nil
}

// Random implements Catalog.
func (m *Mongo) Random(ctx context.Context, filter Filter) (*models.Movie, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: nomineeQuery(filter)}},
		{{Key: "$sample", Value: bson.M{"size": 1}}},
	}
	cur, err := m.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to sample movie: %w", err)
	}

	var out []models.Movie
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode sampled movie: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

// Browse implements Catalog.
func (m *Mongo) Browse(ctx context.Context, filter BrowseFilter) (movies []models.Movie, err error) {
	start := time.Now()
	defer func() { metrics.RecordCatalogQuery(driverMongo, "browse", time.Since(start), err) }()

	f := filter.Normalize()
	q := nomineeQuery(f.Filter)
	if f.WinnersOnly {
		q["is_best_picture_winner"] = true
	}
	if f.Mood != "" {
		q["mood_tags"] = f.Mood
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "oscar_year", Value: -1}, {Key: "title", Value: 1}}).
		SetSkip(int64(f.Offset)).
		SetLimit(int64(f.Limit))

	cur, err := m.col.Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to browse movies: %w", err)
	}
	movies = make([]models.Movie, 0)
	if err := cur.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("failed to decode movies: %w", err)
	}
	return movies, nil
}

// UpsertMovies replaces documents by _id, inserting missing ones.
func (m *Mongo) UpsertMovies(ctx context.Context, movies []models.Movie) (err error) {
	if len(movies) == 0 {
		return nil
	}
	start := time.Now()
	defer func() { metrics.RecordCatalogQuery(driverMongo, "upsert", time.Since(start), err) }()

	writes := make([]mongo.WriteModel, 0, len(movies))
	for i := range movies {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": movies[i].ID}).
			SetReplacement(movies[i]).
			SetUpsert(true))
	}
	if _, err := m.col.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("failed to import movies: %w", err)
	}
	return nil
}

// Ping implements Catalog.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (m *Mongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
