package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopdash/shopdash/engine/auth/model"
	"github.com/shopdash/shopdash/engine/auth/uc"
)

// UserRepository implements the auth domain's Repository over the users
// collection.
type UserRepository struct {
	col *mongo.Collection
}

func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	result, err := r.col.InsertOne(ctx, user)
	if err != nil {
		// The unique email index reports the lost side of a registration
		// race here.
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, uc.ErrEmailExists
		}
		return primitive.NilObjectID, fmt.Errorf("failed to insert user: %w", err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return id, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, uc.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]*model.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer cursor.Close(ctx)
	users := make([]*model.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) PromoteUser(ctx context.Context, id primitive.ObjectID) (int64, int64, error) {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": model.RoleAdmin}},
	)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to update user role: %w", err)
	}
	return result.MatchedCount, result.ModifiedCount, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) (int64, error) {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	return result.DeletedCount, nil
}
