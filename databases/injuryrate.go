package databases

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/medassist/medassist-api/models"
)

// Data sources for rows in the injury rate collection
const (
	InjuryRateSource = "BLS_Table_1_2023"
	FatalitySource   = "BLS_FATALITIES_A1_2023"
)

// InjuryRateDatabase defines the interface for OSHA injury rate lookups
type InjuryRateDatabase interface {
	GetInjuryRate(ctx context.Context, naicsCode string) (*models.InjuryRate, error)
	GetFatalityRecord(ctx context.Context, naicsCode string) (*models.InjuryRate, error)
	GetInjuryRatesByPrefix(ctx context.Context, naicsPrefix string) ([]models.InjuryRate, error)
	GetAllInjuryRates(ctx context.Context) ([]models.InjuryRate, error)
}

type injuryRateDatabase struct {
	collection CollectionHelper
}

// NewInjuryRateDatabase creates a new injury rate database instance
func NewInjuryRateDatabase(dbHelper DatabaseHelper) InjuryRateDatabase {
	return &injuryRateDatabase{
		collection: dbHelper.Collection("injuryrates"),
	}
}

// GetInjuryRate returns the BLS injury rate row for a NAICS code
func (d *injuryRateDatabase) GetInjuryRate(ctx context.Context, naicsCode string) (*models.InjuryRate, error) {
	return d.findOne(ctx, bson.M{"naicsCode": naicsCode, "dataSource": InjuryRateSource})
}

// GetFatalityRecord returns the BLS fatality row for a NAICS code
func (d *injuryRateDatabase) GetFatalityRecord(ctx context.Context, naicsCode string) (*models.InjuryRate, error) {
	return d.findOne(ctx, bson.M{"naicsCode": naicsCode, "dataSource": FatalitySource})
}

// GetInjuryRatesByPrefix returns injury rate rows for an industry group,
// e.g. prefix "23" for all of construction
func (d *injuryRateDatabase) GetInjuryRatesByPrefix(ctx context.Context, naicsPrefix string) ([]models.InjuryRate, error) {
	filter := bson.M{
		"naicsCode":  bson.M{"$regex": "^" + naicsPrefix},
		"dataSource": InjuryRateSource,
	}
	return d.find(ctx, filter)
}

// GetAllInjuryRates returns every injury rate row
func (d *injuryRateDatabase) GetAllInjuryRates(ctx context.Context) ([]models.InjuryRate, error) {
	return d.find(ctx, bson.M{"dataSource": InjuryRateSource})
}

func (d *injuryRateDatabase) findOne(ctx context.Context, filter bson.M) (*models.InjuryRate, error) {
	var rate models.InjuryRate
	if err := d.collection.FindOne(ctx, filter).Decode(&rate); err != nil {
		return nil, err
	}
	return &rate, nil
}

func (d *injuryRateDatabase) find(ctx context.Context, filter bson.M) ([]models.InjuryRate, error) {
	cursor, err := d.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	rates := []models.InjuryRate{}
	if err := cursor.All(ctx, &rates); err != nil {
		return nil, err
	}
	return rates, nil
}
