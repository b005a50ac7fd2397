package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/smartdustbin/internal/pkg/database"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	nrpkg "github.com/piresc/smartdustbin/internal/pkg/newrelic"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names
const (
	CollectionDustbins = "dustbins"
	CollectionReports  = "reports"
)

// MongoRepo implements dustbin.DustbinRepo on MongoDB
type MongoRepo struct {
	client   *database.MongoClient
	dustbins *mongo.Collection
	reports  *mongo.Collection
}

// NewMongoRepository creates a new MongoDB backed repository
func NewMongoRepository(client *database.MongoClient) *MongoRepo {
	db := client.Database()
	return &MongoRepo{
		client:   client,
		dustbins: db.Collection(CollectionDustbins),
		reports:  db.Collection(CollectionReports),
	}
}

// Ping checks that the server answers
func (r *MongoRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx)
}

// ListActive returns every record whose status is active
func (r *MongoRepo) ListActive(ctx context.Context) ([]*models.Dustbin, error) {
	defer nrpkg.StartDatastoreSegment(ctx, newrelic.DatastoreMongoDB, CollectionDustbins, "find")()

	cursor, err := r.dustbins.Find(ctx, bson.M{"status": models.DustbinStatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to query dustbins: %w", err)
	}
	defer cursor.Close(ctx)

	dustbins := make([]*models.Dustbin, 0)
	if err := cursor.All(ctx, &dustbins); err != nil {
		return nil, fmt.Errorf("failed to decode dustbins: %w", err)
	}
	return dustbins, nil
}

// GetByID returns the record with the given id, whatever its status
func (r *MongoRepo) GetByID(ctx context.Context, id string) (*models.Dustbin, error) {
	defer nrpkg.StartDatastoreSegment(ctx, newrelic.DatastoreMongoDB, CollectionDustbins, "findOne")()

	var d models.Dustbin
	err := r.dustbins.FindOne(ctx, bson.M{"id": id}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrDustbinNotFound
		}
		return nil, fmt.Errorf("failed to get dustbin: %w", err)
	}
	return &d, nil
}

// Create inserts one record
func (r *MongoRepo) Create(ctx context.Context, dustbin *models.Dustbin) error {
	defer nrpkg.StartDatastoreSegment(ctx, newrelic.DatastoreMongoDB, CollectionDustbins, "insertOne")()

	if _, err := r.dustbins.InsertOne(ctx, dustbin); err != nil {
		return fmt.Errorf("failed to insert dustbin: %w", err)
	}
	return nil
}

// CreateMany inserts records in one round trip
func (r *MongoRepo) CreateMany(ctx context.Context, dustbins []*models.Dustbin) error {
	if len(dustbins) == 0 {
		return nil
	}
	defer nrpkg.StartDatastoreSegment(ctx, newrelic.DatastoreMongoDB, CollectionDustbins, "insertMany")()

	docs := make([]interface{}, len(dustbins))
	for i, d := range dustbins {
		docs[i] = d
	}
	if _, err := r.dustbins.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert dustbins: %w", err)
	}
	return nil
}

// UpdateFillLevel sets the fill percentage and the update time
func (r *MongoRepo) UpdateFillLevel(ctx context.Context, id string, fillPercentage float64, updatedAt time.Time) error {
	defer nrpkg.StartDatastoreSegment(ctx, newrelic.DatastoreMongoDB, CollectionDustbins, "updateOne")()

	update := bson.M{"$set": bson.M{
		"fillPercentage": fillPercentage,
		"lastUpdated":    updatedAt,
	}}
	result, err := r.dustbins.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update fill level: %w", err)
	}
	if result.MatchedCount == 0 {
		return models.ErrDustbinNotFound
	}
	return nil
}

// Count counts every record regardless of status
func (r *MongoRepo) Count(ctx context.Context) (int64, error) {
	defer nrpkg.StartDatastoreSegment(ctx, newrelic.DatastoreMongoDB, CollectionDustbins, "countDocuments")()

	count, err := r.dustbins.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count dustbins: %w", err)
	}
	return count, nil
}

// CreateReport inserts an issue report
func (r *MongoRepo) CreateReport(ctx context.Context, report *models.IssueReport) error {
	defer nrpkg.StartDatastoreSegment(ctx, newrelic.DatastoreMongoDB, CollectionReports, "insertOne")()

	if _, err := r.reports.InsertOne(ctx, report); err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}
	return nil
}
