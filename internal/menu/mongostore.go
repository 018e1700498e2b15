package menu

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionName = "menu_items"

// MongoStore is the MongoDB-backed menu item store.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a Store persisting menu items to db.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the chef lookup index. Call once at startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "chefId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("menu: create indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) Create(ctx context.Context, item *Item) error {
	if _, err := s.coll.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("menu: insert: %w", err)
	}
	return nil
}

func (s *MongoStore) ByID(ctx context.Context, id string) (*Item, error) {
	var item Item
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("menu: find: %w", err)
	}
	return &item, nil
}

func (s *MongoStore) ByChef(ctx context.Context, chefID string, availableOnly bool) ([]Item, error) {
	filter := bson.M{"chefId": chefID}
	if availableOnly {
		filter["isAvailable"] = true
	}

	cur, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("menu: list: %w", err)
	}

	items := []Item{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("menu: decode list: %w", err)
	}
	return items, nil
}

func (s *MongoStore) Update(ctx context.Context, id string, upd ItemUpdate) (*Item, error) {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.IsAvailable != nil {
		set["isAvailable"] = *upd.IsAvailable
	}
	if len(set) == 0 {
		return s.ByID(ctx, id)
	}

	var item Item
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("menu: update: %w", err)
	}
	return &item, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("menu: delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
