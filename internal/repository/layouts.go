package repository

import (
	"context"
	"time"

	"github.com/guttosm/print-orders/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LayoutDocument is one stored layout item.
type LayoutDocument struct {
	Group      string                 `bson:"group"`
	GroupName  string                 `bson:"group_name"`
	Slug       string                 `bson:"slug"`
	Definition model.LayoutDefinition `bson:"definition"`
	CreatedAt  time.Time              `bson:"created_at"`
}

// LayoutRepository stores extra label layouts loaded into the catalog at startup.
type LayoutRepository struct {
	collection *mongo.Collection
}

// NewLayoutRepository creates a layout repository.
func NewLayoutRepository(db *MongoDB) *LayoutRepository {
	return &LayoutRepository{collection: db.Layouts}
}

// List returns stored layouts grouped, groups and items in insertion order.
func (r *LayoutRepository) List(ctx context.Context) ([]model.LayoutGroup, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []LayoutDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return groupLayouts(docs), nil
}

// Upsert stores one layout item.
func (r *LayoutRepository) Upsert(ctx context.Context, doc LayoutDocument) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"group": doc.Group, "slug": doc.Slug},
		bson.M{
			"$set": bson.M{
				"group_name": doc.GroupName,
				"definition": doc.Definition,
			},
			"$setOnInsert": bson.M{"created_at": time.Now()},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func groupLayouts(docs []LayoutDocument) []model.LayoutGroup {
	var groups []model.LayoutGroup
	index := make(map[string]int)

	for _, d := range docs {
		i, ok := index[d.Group]
		if !ok {
			i = len(groups)
			index[d.Group] = i
			groups = append(groups, model.LayoutGroup{
				Slug:  d.Group,
				Name:  d.GroupName,
				Items: make(map[string]model.LayoutDefinition),
			})
		}
		g := &groups[i]
		if _, dup := g.Items[d.Slug]; dup {
			continue
		}
		g.Items[d.Slug] = d.Definition
		g.Order = append(g.Order, d.Slug)
	}
	return groups
}
