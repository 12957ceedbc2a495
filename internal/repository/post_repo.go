package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"minisocial/internal/model"
	"minisocial/pkg/apierror"
)

type postDocument struct {
	ID        bson.ObjectID `bson:"_id"`
	Title     string        `bson:"title"`
	Body      string        `bson:"body"`
	MediaKeys []string      `bson:"media_keys"`
	AuthorID  string        `bson:"author_id"`
	CreatedAt time.Time     `bson:"created_at"`
}

func (d postDocument) toModel() model.Post {
	mediaKeys := d.MediaKeys
	if mediaKeys == nil {
		mediaKeys = []string{}
	}

	return model.Post{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Body:      d.Body,
		MediaKeys: mediaKeys,
		AuthorID:  d.AuthorID,
		CreatedAt: d.CreatedAt,
	}
}

type PostRepository struct {
	collection *mongo.Collection
}

func NewPostRepository(collection *mongo.Collection) *PostRepository {
	return &PostRepository{collection: collection}
}

func (r *PostRepository) Insert(ctx context.Context, post model.Post) (model.Post, error) {
	doc := postDocument{
		ID:        bson.NewObjectID(),
		Title:     post.Title,
		Body:      post.Body,
		MediaKeys: post.MediaKeys,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return model.Post{}, fmt.Errorf("insert post: %w", err)
	}

	return doc.toModel(), nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (model.Post, error) {
	objectID, err := parseObjectID(id, "post_id")
	if err != nil {
		return model.Post{}, err
	}

	var doc postDocument
	err = r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: objectID}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Post{}, model.ErrPostNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("find post by id: %w", err)
	}

	return doc.toModel(), nil
}

func (r *PostRepository) ListRecent(ctx context.Context, limit int64) ([]model.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	var docs []postDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]model.Post, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, doc.toModel())
	}

	return posts, nil
}

func parseObjectID(value string, label string) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(value)
	if err != nil {
		return bson.ObjectID{}, apierror.New("BAD_REQUEST", "invalid "+label, value, http.StatusBadRequest)
	}

	return objectID, nil
}
