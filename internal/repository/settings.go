package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/print-orders/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsDocumentID is the _id of the single print settings document.
const settingsDocumentID = "print_settings"

// SettingsRepository stores the print settings document.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a settings repository.
func NewSettingsRepository(db *MongoDB) *SettingsRepository {
	return &SettingsRepository{collection: db.Settings}
}

// Get returns the stored settings, or nil when none were saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (*model.PrintSettings, error) {
	var s model.PrintSettings
	err := r.collection.FindOne(ctx, bson.M{"_id": settingsDocumentID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpdateStore replaces the sender block and returns the updated settings.
func (r *SettingsRepository) UpdateStore(ctx context.Context, store model.StoreInfo, updatedBy string) (*model.PrintSettings, error) {
	store.UpdatedAt = time.Now()
	return r.set(ctx, bson.M{"store": store}, updatedBy)
}

// UpdateOptions replaces the print options and returns the updated settings.
func (r *SettingsRepository) UpdateOptions(ctx context.Context, opts model.PrintOptions, updatedBy string) (*model.PrintSettings, error) {
	return r.set(ctx, bson.M{"options": opts}, updatedBy)
}

func (r *SettingsRepository) set(ctx context.Context, fields bson.M, updatedBy string) (*model.PrintSettings, error) {
	fields["updated_at"] = time.Now()
	if updatedBy != "" {
		fields["updated_by"] = updatedBy
	}

	var s model.PrintSettings
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": settingsDocumentID},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&s)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
