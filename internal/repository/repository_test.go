package repository

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"minisocial/pkg/apierror"
)

func TestIsUniqueViolation(t *testing.T) {
	require.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	require.True(t, isUniqueViolation(fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505"})))

	require.False(t, isUniqueViolation(nil))
	require.False(t, isUniqueViolation(errors.New("connection refused")))
	require.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestParseObjectID(t *testing.T) {
	id := bson.NewObjectID()

	parsed, err := parseObjectID(id.Hex(), "post_id")
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = parseObjectID("not-an-object-id", "post_id")
	var apiErr *apierror.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
	require.Contains(t, apiErr.Message, "post_id")
}

func TestPostDocumentToModel(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := postDocument{
		ID:        bson.NewObjectID(),
		Title:     "hello",
		Body:      "world",
		AuthorID:  "author-1",
		CreatedAt: now,
	}

	post := doc.toModel()
	require.Equal(t, doc.ID.Hex(), post.ID)
	require.Equal(t, "hello", post.Title)
	require.Equal(t, now, post.CreatedAt)

	// A document stored without media keys must not surface a null list.
	require.NotNil(t, post.MediaKeys)
	require.Empty(t, post.MediaKeys)
}

func TestCommentDocumentToModel(t *testing.T) {
	parent := bson.NewObjectID()
	doc := commentDocument{
		ID:              bson.NewObjectID(),
		PostID:          bson.NewObjectID(),
		Body:            "reply",
		AuthorID:        "author-1",
		ParentCommentID: &parent,
		CreatedAt:       time.Now().UTC(),
	}

	comment := doc.toModel()
	require.Equal(t, doc.ID.Hex(), comment.ID)
	require.Equal(t, doc.PostID.Hex(), comment.PostID)
	require.NotNil(t, comment.ParentCommentID)
	require.Equal(t, parent.Hex(), *comment.ParentCommentID)

	doc.ParentCommentID = nil
	require.Nil(t, doc.toModel().ParentCommentID)
}
