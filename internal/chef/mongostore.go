package chef

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const collectionName = "chefs"

// MongoStore is the MongoDB-backed chef store.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore returns a Store persisting chefs to db.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique email index. Call once at startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("chef: create indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) Create(ctx context.Context, c *Chef) error {
	if _, err := s.coll.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("chef: insert: %w", err)
	}
	return nil
}

func (s *MongoStore) ByID(ctx context.Context, id string) (*Chef, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoStore) ByEmail(ctx context.Context, email string) (*Chef, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.M) (*Chef, error) {
	var c Chef
	if err := s.coll.FindOne(ctx, filter).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("chef: find: %w", err)
	}
	return &c, nil
}

func (s *MongoStore) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*Chef, error) {
	set := bson.M{}
	if upd.RestaurantName != nil {
		set["restaurantName"] = *upd.RestaurantName
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if len(set) == 0 {
		return s.ByID(ctx, id)
	}

	var c Chef
	err := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("chef: update profile: %w", err)
	}
	return &c, nil
}

func (s *MongoStore) SetPlan(ctx context.Context, id string, state PlanState) error {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"planActive":     state.Active,
			"planExpiresAt":  state.ExpiresAt,
			"lastPaymentRef": state.PaymentRef,
		}},
	)
	if err != nil {
		return fmt.Errorf("chef: set plan: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeactivateIfExpired uses a conditional update so a concurrent plan
// activation is never overwritten: the filter only matches while the plan is
// still active with a past expiration.
func (s *MongoStore) DeactivateIfExpired(ctx context.Context, id string, now time.Time) (bool, error) {
	res, err := s.coll.UpdateOne(ctx,
		bson.M{
			"_id":           id,
			"planActive":    true,
			"planExpiresAt": bson.M{"$lte": now},
		},
		bson.M{"$set": bson.M{"planActive": false}},
	)
	if err != nil {
		return false, fmt.Errorf("chef: deactivate expired plan: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (s *MongoStore) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.coll.UpdateMany(ctx,
		bson.M{
			"planActive":    true,
			"planExpiresAt": bson.M{"$lte": now},
		},
		bson.M{"$set": bson.M{"planActive": false}},
	)
	if err != nil {
		return 0, fmt.Errorf("chef: deactivate expired plans: %w", err)
	}
	return res.ModifiedCount, nil
}
