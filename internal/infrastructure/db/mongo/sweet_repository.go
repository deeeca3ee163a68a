package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

const sweetsCollection = "sweets"

type SweetRepository struct {
	coll *mongo.Collection
}

func NewSweetRepository(db *mongo.Database) *SweetRepository {
	return &SweetRepository{coll: db.Collection(sweetsCollection)}
}

type mongoSweet struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Category  string             `bson:"category"`
	Price     float64            `bson:"price"`
	Quantity  int64              `bson:"quantity"`
	Image     string             `bson:"image"`
	CreatedAt int64              `bson:"created_at"`
	UpdatedAt int64              `bson:"updated_at"`
}

func (ms mongoSweet) toDomain() *domain.Sweet {
	return &domain.Sweet{
		ID:        ms.ID.Hex(),
		Name:      ms.Name,
		Category:  ms.Category,
		Price:     ms.Price,
		Quantity:  ms.Quantity,
		Image:     ms.Image,
		CreatedAt: unixToTime(ms.CreatedAt),
		UpdatedAt: unixToTime(ms.UpdatedAt),
	}
}

func (r *SweetRepository) Create(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoSweet{
		Name:      s.Name,
		Category:  s.Category,
		Price:     s.Price,
		Quantity:  s.Quantity,
		Image:     s.Image,
		CreatedAt: s.CreatedAt.Unix(),
		UpdatedAt: s.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, classifyErr(fmt.Errorf("insert sweet: %w", err))
	}

	created := *s
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *SweetRepository) FindByID(ctx context.Context, id string) (*domain.Sweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ms mongoSweet
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, classifyErr(fmt.Errorf("find sweet: %w", err))
	}
	return ms.toDomain(), nil
}

func (r *SweetRepository) List(ctx context.Context) ([]*domain.Sweet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, classifyErr(fmt.Errorf("list sweets: %w", err))
	}
	defer cursor.Close(ctx)

	sweets := []*domain.Sweet{}
	for cursor.Next(ctx) {
		var ms mongoSweet
		if err := cursor.Decode(&ms); err != nil {
			return nil, classifyErr(fmt.Errorf("decode sweet: %w", err))
		}
		sweets = append(sweets, ms.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, classifyErr(fmt.Errorf("list sweets: %w", err))
	}
	return sweets, nil
}

// Update applies a partial $set of only the supplied fields and returns the
// document after the update. updated_at is always refreshed.
func (r *SweetRepository) Update(ctx context.Context, id string, update ports.SweetUpdate) (*domain.Sweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ms mongoSweet
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&ms)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, classifyErr(fmt.Errorf("update sweet: %w", err))
	}
	return ms.toDomain(), nil
}

func (r *SweetRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return classifyErr(fmt.Errorf("delete sweet: %w", err))
	}
	if res.DeletedCount == 0 {
		return domain.ErrSweetNotFound
	}
	return nil
}

// DecrementQuantity subtracts n from the stock in a single conditional
// update: the filter only matches when quantity >= n, so concurrent
// purchases can never drive the stock negative (no read-then-write race).
func (r *SweetRepository) DecrementQuantity(ctx context.Context, id string, n int64) (*domain.Sweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": oid, "quantity": bson.M{"$gte": n}}
	change := bson.M{
		"$inc": bson.M{"quantity": -n},
		"$set": bson.M{"updated_at": time.Now().UTC().Unix()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ms mongoSweet
	err = r.coll.FindOneAndUpdate(ctx, filter, change, opts).Decode(&ms)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Either the sweet is absent or the stock guard failed.
			// Distinguish with a plain lookup.
			if _, ferr := r.FindByID(ctx, id); ferr != nil {
				return nil, ferr
			}
			return nil, domain.ErrInsufficientStock
		}
		return nil, classifyErr(fmt.Errorf("decrement stock: %w", err))
	}
	return ms.toDomain(), nil
}

// IncrementQuantity adds n to the stock atomically.
func (r *SweetRepository) IncrementQuantity(ctx context.Context, id string, n int64) (*domain.Sweet, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	change := bson.M{
		"$inc": bson.M{"quantity": n},
		"$set": bson.M{"updated_at": time.Now().UTC().Unix()},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ms mongoSweet
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, change, opts).Decode(&ms)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSweetNotFound
		}
		return nil, classifyErr(fmt.Errorf("increment stock: %w", err))
	}
	return ms.toDomain(), nil
}

// EnsureIndexes creates the secondary indexes on the sweets collection.
func (r *SweetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// parseID converts a hex id into an ObjectID. Malformed ids resolve to
// "not found" rather than a validation error: they can never match a record.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrSweetNotFound
	}
	return oid, nil
}
