package repository

import (
	"context"
	"time"

	"github.com/guttosm/print-orders/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LineItemDocument is one stored order line. Subtotal is kept as a decimal
// string so no precision is lost in BSON doubles.
type LineItemDocument struct {
	Name       string  `bson:"name"`
	SKU        string  `bson:"sku,omitempty"`
	Quantity   int     `bson:"quantity"`
	UnitWeight float64 `bson:"unit_weight"`
	Subtotal   string  `bson:"subtotal"`
}

// OrderDocument is the stored shape of an order.
type OrderDocument struct {
	ID              primitive.ObjectID     `bson:"_id,omitempty"`
	OrderID         int64                  `bson:"order_id"`
	Billing         model.FieldSet         `bson:"billing"`
	Shipping        model.FieldSet         `bson:"shipping"`
	Items           []LineItemDocument     `bson:"items"`
	CustomerNote    string                 `bson:"customer_note,omitempty"`
	ShippingMethods []model.ShippingMethod `bson:"shipping_methods"`
	MetaData        []model.MetaEntry      `bson:"meta_data"`
	UpdatedAt       time.Time              `bson:"updated_at"`
}

// NewOrderDocument converts a domain order for storage.
func NewOrderDocument(o model.Order) OrderDocument {
	items := make([]LineItemDocument, len(o.Items))
	for i, it := range o.Items {
		items[i] = LineItemDocument{
			Name:       it.Name,
			SKU:        it.SKU,
			Quantity:   it.Quantity,
			UnitWeight: it.UnitWeight,
			Subtotal:   it.Subtotal.String(),
		}
	}
	return OrderDocument{
		OrderID:         o.ID,
		Billing:         o.Billing,
		Shipping:        o.Shipping,
		Items:           items,
		CustomerNote:    o.CustomerNote,
		ShippingMethods: o.ShippingMethods,
		MetaData:        o.MetaData,
	}
}

// ToModel converts the document to a domain order. A missing or unparseable
// subtotal reads as zero and is flagged SubtotalUnresolved.
func (d OrderDocument) ToModel() model.Order {
	items := make([]model.LineItem, len(d.Items))
	for i, it := range d.Items {
		sub, err := decimal.NewFromString(it.Subtotal)
		unresolved := err != nil
		if unresolved {
			sub = decimal.Zero
		}
		items[i] = model.LineItem{
			Name:               it.Name,
			SKU:                it.SKU,
			Quantity:           it.Quantity,
			UnitWeight:         it.UnitWeight,
			Subtotal:           sub,
			SubtotalUnresolved: unresolved,
		}
	}
	return model.Order{
		ID:              d.OrderID,
		Billing:         d.Billing,
		Shipping:        d.Shipping,
		Items:           items,
		CustomerNote:    d.CustomerNote,
		ShippingMethods: d.ShippingMethods,
		MetaData:        d.MetaData,
	}
}

// OrderRepository reads and writes the orders collection.
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *MongoDB) *OrderRepository {
	return &OrderRepository{collection: db.Orders}
}

// FindByIDs returns the orders found for ids keyed by order id. Missing ids
// are simply absent from the map.
func (r *OrderRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]model.Order, error) {
	found := make(map[int64]model.Order, len(ids))
	if len(ids) == 0 {
		return found, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"order_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	for cursor.Next(ctx) {
		var doc OrderDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		found[doc.OrderID] = doc.ToModel()
	}
	return found, cursor.Err()
}

// Upsert stores o, replacing any order with the same id.
func (r *OrderRepository) Upsert(ctx context.Context, o model.Order) error {
	doc := NewOrderDocument(o)
	doc.UpdatedAt = time.Now()

	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"order_id": o.ID},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}
