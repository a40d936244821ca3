package data_access

import (
	"context"
	"errors"

	"github.com/pcrantfo/3-movie-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateKey reports a write rejected by the unique username index.
var ErrDuplicateKey = errors.New("duplicate key")

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	res, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// Update overwrites the mutable profile fields of the named user and
// returns the updated document, or nil if no such user exists.
func (r *UserRepository) Update(ctx context.Context, username string, user *models.User) (*models.User, error) {
	update := bson.M{"$set": bson.M{
		"username":   user.Username,
		"password":   user.Password,
		"email":      user.Email,
		"name":       user.Name,
		"birth_date": user.BirthDate,
	}}
	return r.findOneAndUpdate(ctx, bson.M{"username": username}, update)
}

// AddFavorite appends movieID to the user's favorites. Duplicates are not
// prevented.
func (r *UserRepository) AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	update := bson.M{"$push": bson.M{"favorites": movieID}}
	return r.findOneAndUpdate(ctx, bson.M{"username": username}, update)
}

// RemoveFavorite removes every occurrence of movieID from the user's
// favorites.
func (r *UserRepository) RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	update := bson.M{"$pull": bson.M{"favorites": movieID}}
	return r.findOneAndUpdate(ctx, bson.M{"username": username}, update)
}

func (r *UserRepository) Delete(ctx context.Context, username string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *UserRepository) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, err
	}
	return &user, nil
}
