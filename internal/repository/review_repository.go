package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Review mirrors a document in the 'reviews' collection. MovieID is a
// weak reference: it points at a movie without owning it, and no cascade
// runs when the movie is deleted.
type Review struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MovieID  bson.ObjectID `bson:"movieId" json:"movieId"`
	Username string        `bson:"username" json:"username"`
	Review   string        `bson:"review" json:"review"`
	Rating   int           `bson:"rating" json:"rating"`
}

// ReviewWithMovie is a review expanded with the referenced movie's title
// for display. MovieTitle is empty when the movie no longer exists.
type ReviewWithMovie struct {
	Review     `bson:",inline"`
	MovieTitle string `bson:"movieTitle" json:"movieTitle,omitempty"`
}

type ReviewRepo struct {
	c *mongo.Collection
}

func NewReviewRepo(db *mongo.Database) *ReviewRepo {
	return &ReviewRepo{c: db.Collection("reviews")}
}

// EnsureIndexes creates the index backing the reviews-by-movie join.
func (r *ReviewRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "movieId", Value: 1}},
	})
	return err
}

// Create inserts a review and populates its generated ID.
func (r *ReviewRepo) Create(ctx context.Context, rev *Review) error {
	res, err := r.c.InsertOne(ctx, rev)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		rev.ID = id
	}
	return nil
}

// ListWithMovieTitle returns all reviews, each joined with the title of
// the movie it references. Orphaned reviews (movie deleted) come back
// with an empty title rather than being dropped.
func (r *ReviewRepo) ListWithMovieTitle(ctx context.Context) ([]ReviewWithMovie, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "movies",
			"localField":   "movieId",
			"foreignField": "_id",
			"as":           "movie",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$movie", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$addFields", Value: bson.M{"movieTitle": "$movie.title"}}},
		{{Key: "$project", Value: bson.M{"movie": 0}}},
	}
	cur, err := r.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	reviews := []ReviewWithMovie{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
