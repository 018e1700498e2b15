package order

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionName = "orders"

// MongoStore is the MongoDB-backed order store.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a Store persisting orders to db.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the chef/date listing index. Call once at startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "chefId", Value: 1}, {Key: "orderDate", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("order: create indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) Create(ctx context.Context, o *Order) error {
	if _, err := s.coll.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("order: insert: %w", err)
	}
	return nil
}

func (s *MongoStore) ByID(ctx context.Context, id string) (*Order, error) {
	var o Order
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("order: find: %w", err)
	}
	return &o, nil
}

func (s *MongoStore) ByChef(ctx context.Context, chefID string) ([]Order, error) {
	cur, err := s.coll.Find(ctx,
		bson.M{"chefId": chefID},
		options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("order: list: %w", err)
	}

	orders := []Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("order: decode list: %w", err)
	}
	return orders, nil
}

func (s *MongoStore) Apply(ctx context.Context, id string, upd Update) (*Order, error) {
	set := bson.M{}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.ClientName != nil {
		set["clientName"] = *upd.ClientName
	}
	if upd.ClientPhone != nil {
		set["clientPhone"] = *upd.ClientPhone
	}
	if upd.ClientAddress != nil {
		set["clientAddress"] = *upd.ClientAddress
	}
	if upd.Observations != nil {
		set["observations"] = *upd.Observations
	}
	if len(set) == 0 {
		return s.ByID(ctx, id)
	}

	var o Order
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&o)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("order: update: %w", err)
	}
	return &o, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("order: delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
