package databases

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medassist/medassist-api/models"
)

// InjuryRecordDatabase defines the interface for injury record database operations
type InjuryRecordDatabase interface {
	CreateInjuryRecord(ctx context.Context, record *models.InjuryRecord) error
	GetInjuryRecordByID(ctx context.Context, id string) (*models.InjuryRecord, error)
	GetInjuryRecords(ctx context.Context, userID string, limit, page int64) (*models.InjuryRecordResponse, error)
	DeleteInjuryRecord(ctx context.Context, id string) error
	DeleteInjuryRecordsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type injuryRecordDatabase struct {
	collection CollectionHelper
}

// NewInjuryRecordDatabase creates a new injury record database instance
func NewInjuryRecordDatabase(dbHelper DatabaseHelper) InjuryRecordDatabase {
	return &injuryRecordDatabase{
		collection: dbHelper.Collection("injuryrecords"),
	}
}

// CreateInjuryRecord stores one completed trauma assessment
func (d *injuryRecordDatabase) CreateInjuryRecord(ctx context.Context, record *models.InjuryRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := d.collection.InsertOne(ctx, record)
	return err
}

// GetInjuryRecordByID retrieves a single injury record by ID
func (d *injuryRecordDatabase) GetInjuryRecordByID(ctx context.Context, id string) (*models.InjuryRecord, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var record models.InjuryRecord
	if err := d.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&record); err != nil {
		return nil, err
	}

	return &record, nil
}

// GetInjuryRecords retrieves injury records with pagination, newest first,
// optionally filtered by the user the assessment was attributed to
func (d *injuryRecordDatabase) GetInjuryRecords(ctx context.Context, userID string, limit, page int64) (*models.InjuryRecordResponse, error) {
	filter := bson.M{}
	if userID != "" {
		filter["userId"] = userID
	}

	opts := newMongoPaginate(limit, page).getPaginatedOpts()
	opts.SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := d.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	records := []models.InjuryRecord{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	totalCount, err := d.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	totalPages := (totalCount + limit - 1) / limit

	return &models.InjuryRecordResponse{
		InjuryRecords: records,
		Pagination: models.Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalRecords: totalCount,
			Limit:        limit,
		},
	}, nil
}

// DeleteInjuryRecord deletes an injury record by ID
func (d *injuryRecordDatabase) DeleteInjuryRecord(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	deleted, err := d.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteInjuryRecordsBefore removes records created before the cutoff and
// returns how many were purged. Used by the retention scheduler.
func (d *injuryRecordDatabase) DeleteInjuryRecordsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return d.collection.DeleteMany(ctx, bson.M{"createdAt": bson.M{"$lt": cutoff}})
}
