package storage

import (
	"context"
	"fmt"

	"bistro-boss/boss-svc/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	accounts *Collection[domain.Account]
	menu     *Collection[domain.MenuItem]
	carts    *Collection[domain.CartItem]
	reviews  *Collection[domain.Review]
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		accounts: NewCollection[domain.Account](db.Collection("users")),
		menu:     NewCollection[domain.MenuItem](db.Collection("menu")),
		carts:    NewCollection[domain.CartItem](db.Collection("carts")),
		reviews:  NewCollection[domain.Review](db.Collection("reviews")),
	}
}

// EnsureIndexes backs the insert-if-absent rule on account email with a
// unique index so concurrent sign-ups cannot both insert.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []struct {
		coll  *mongo.Collection
		model mongo.IndexModel
	}{
		{r.accounts.coll, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)}},
		{r.carts.coll, mongo.IndexModel{Keys: bson.D{{Key: "userEmail", Value: 1}}}},
	}
	for _, idx := range indexes {
		if _, err := idx.coll.Indexes().CreateOne(ctx, idx.model); err != nil {
			return fmt.Errorf("ensure index on %s: %w", idx.coll.Name(), err)
		}
	}
	return nil
}

func (r *MongoRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return r.accounts.Find(ctx, nil)
}

func (r *MongoRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.accounts.FindOne(ctx, bson.M{"email": email})
}

// CreateAccount reports created=false when the email is taken, including
// when a concurrent insert wins the unique index.
func (r *MongoRepository) CreateAccount(ctx context.Context, account *domain.Account) (domain.InsertResult, bool, error) {
	res, err := r.accounts.Insert(ctx, account)
	if mongo.IsDuplicateKeyError(err) {
		return domain.InsertResult{}, false, nil
	}
	if err != nil {
		return domain.InsertResult{}, false, err
	}
	return res, true, nil
}

func (r *MongoRepository) SetAccountRole(ctx context.Context, id primitive.ObjectID, role string) (domain.UpdateResult, error) {
	return r.accounts.Set(ctx, bson.M{"_id": id}, bson.M{"role": role})
}

func (r *MongoRepository) DeleteAccount(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	return r.accounts.Delete(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	return r.menu.Find(ctx, nil)
}

func (r *MongoRepository) GetMenuItem(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error) {
	return r.menu.FindByID(ctx, id)
}

func (r *MongoRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem) (domain.InsertResult, error) {
	return r.menu.Insert(ctx, item)
}

func (r *MongoRepository) UpdateMenuItem(ctx context.Context, id primitive.ObjectID, update domain.MenuUpdate) (domain.UpdateResult, error) {
	return r.menu.Set(ctx, bson.M{"_id": id}, bson.M{
		"name":     update.Name,
		"price":    update.Price,
		"category": update.Category,
		"recipe":   update.Recipe,
		"image":    update.Image,
	})
}

func (r *MongoRepository) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) (domain.DeleteResult, error) {
	return r.menu.Delete(ctx, bson.M{"_id": id})
}

func (r *MongoRepository) ListCartItems(ctx context.Context, email string) ([]domain.CartItem, error) {
	return r.carts.Find(ctx, bson.M{"userEmail": email})
}

func (r *MongoRepository) CreateCartItem(ctx context.Context, item *domain.CartItem) (domain.InsertResult, error) {
	return r.carts.Insert(ctx, item)
}

// DeleteCartItem only removes the item when it belongs to ownerEmail.
func (r *MongoRepository) DeleteCartItem(ctx context.Context, id primitive.ObjectID, ownerEmail string) (domain.DeleteResult, error) {
	return r.carts.Delete(ctx, bson.M{"_id": id, "userEmail": ownerEmail})
}

func (r *MongoRepository) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return r.reviews.Find(ctx, nil)
}
