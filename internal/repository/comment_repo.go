package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"minisocial/internal/model"
)

type commentDocument struct {
	ID              bson.ObjectID  `bson:"_id"`
	PostID          bson.ObjectID  `bson:"post_id"`
	Body            string         `bson:"body"`
	AuthorID        string         `bson:"author_id"`
	ParentCommentID *bson.ObjectID `bson:"parent_comment_id"`
	CreatedAt       time.Time      `bson:"created_at"`
}

func (d commentDocument) toModel() model.Comment {
	var parentID *string
	if d.ParentCommentID != nil {
		hex := d.ParentCommentID.Hex()
		parentID = &hex
	}

	return model.Comment{
		ID:              d.ID.Hex(),
		PostID:          d.PostID.Hex(),
		Body:            d.Body,
		AuthorID:        d.AuthorID,
		ParentCommentID: parentID,
		CreatedAt:       d.CreatedAt,
	}
}

type CommentRepository struct {
	collection *mongo.Collection
}

func NewCommentRepository(collection *mongo.Collection) *CommentRepository {
	return &CommentRepository{collection: collection}
}

func (r *CommentRepository) Insert(ctx context.Context, comment model.Comment) (model.Comment, error) {
	postID, err := parseObjectID(comment.PostID, "post_id")
	if err != nil {
		return model.Comment{}, err
	}

	doc := commentDocument{
		ID:        bson.NewObjectID(),
		PostID:    postID,
		Body:      comment.Body,
		AuthorID:  comment.AuthorID,
		CreatedAt: comment.CreatedAt,
	}

	if comment.ParentCommentID != nil {
		parentID, err := parseObjectID(*comment.ParentCommentID, "parent_comment_id")
		if err != nil {
			return model.Comment{}, err
		}
		doc.ParentCommentID = &parentID
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return model.Comment{}, fmt.Errorf("insert comment: %w", err)
	}

	return doc.toModel(), nil
}

// FindInPost looks up a comment scoped to a post, so a comment id from
// another post does not resolve.
func (r *CommentRepository) FindInPost(ctx context.Context, id string, postID string) (model.Comment, error) {
	commentObjectID, err := parseObjectID(id, "parent_comment_id")
	if err != nil {
		return model.Comment{}, err
	}
	postObjectID, err := parseObjectID(postID, "post_id")
	if err != nil {
		return model.Comment{}, err
	}

	var doc commentDocument
	err = r.collection.FindOne(ctx, bson.D{
		{Key: "_id", Value: commentObjectID},
		{Key: "post_id", Value: postObjectID},
	}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Comment{}, model.ErrCommentNotFound
	}
	if err != nil {
		return model.Comment{}, fmt.Errorf("find comment in post: %w", err)
	}

	return doc.toModel(), nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]model.Comment, error) {
	postObjectID, err := parseObjectID(postID, "post_id")
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.D{{Key: "post_id", Value: postObjectID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	var docs []commentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	comments := make([]model.Comment, 0, len(docs))
	for _, doc := range docs {
		comments = append(comments, doc.toModel())
	}

	return comments, nil
}
