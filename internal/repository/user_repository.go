package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/moviehub/movie-api/internal/utils"
)

// User mirrors a document in the 'users' collection. The password field
// holds a bcrypt hash and is never serialized in responses.
type User struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string        `bson:"name" json:"name"`
	Username string        `bson:"username" json:"username"`
	Password string        `bson:"password" json:"-"`
}

type UserRepo struct {
	c *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{c: db.Collection("users")}
}

// EnsureIndexes creates the unique index on usernames. Two concurrent
// signups for the same username race on this index; the loser gets a
// duplicate-key error, which Create maps to ErrUsernameExists.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create inserts a user with a hashed password and returns its ID.
func (r *UserRepo) Create(ctx context.Context, name, username, password string, cost int) (bson.ObjectID, error) {
	username = strings.TrimSpace(username)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return bson.ObjectID{}, err
	}
	res, err := r.c.InsertOne(ctx, User{Name: name, Username: username, Password: hash})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return bson.ObjectID{}, ErrUsernameExists
		}
		return bson.ObjectID{}, err
	}
	id, _ := res.InsertedID.(bson.ObjectID)
	return id, nil
}

// GetByUsername fetches a user by exact username, selecting only the
// identity fields and the password hash.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	var u User
	err := r.c.FindOne(ctx,
		bson.M{"username": strings.TrimSpace(username)},
		options.FindOne().SetProjection(bson.M{"name": 1, "username": 1, "password": 1}),
	).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return User{}, ErrUserNotFound
	}
	return u, err
}
