package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"minisocial/internal/model"
	"minisocial/pkg/apierror"
)

const (
	recentPostsLimit = 50
	maxTitleLength   = 200
)

type PostRepository interface {
	Insert(ctx context.Context, post model.Post) (model.Post, error)
	FindByID(ctx context.Context, id string) (model.Post, error)
	ListRecent(ctx context.Context, limit int64) ([]model.Post, error)
}

type CommentRepository interface {
	Insert(ctx context.Context, comment model.Comment) (model.Comment, error)
	FindInPost(ctx context.Context, id string, postID string) (model.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]model.Comment, error)
}

type PostService struct {
	posts    PostRepository
	comments CommentRepository
}

func NewPostService(posts PostRepository, comments CommentRepository) *PostService {
	return &PostService{posts: posts, comments: comments}
}

func (s *PostService) Create(ctx context.Context, authorID string, req model.CreatePostRequest) (model.Post, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > maxTitleLength {
		return model.Post{}, apierror.New("BAD_REQUEST", "title must be between 1 and 200 characters", "title", http.StatusBadRequest)
	}
	if strings.TrimSpace(req.Body) == "" {
		return model.Post{}, apierror.New("BAD_REQUEST", "body is required", "body", http.StatusBadRequest)
	}

	mediaKeys := req.MediaKeys
	if mediaKeys == nil {
		mediaKeys = []string{}
	}

	return s.posts.Insert(ctx, model.Post{
		Title:     title,
		Body:      req.Body,
		MediaKeys: mediaKeys,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *PostService) List(ctx context.Context) ([]model.Post, error) {
	return s.posts.ListRecent(ctx, recentPostsLimit)
}

func (s *PostService) Get(ctx context.Context, postID string) (model.Post, error) {
	return s.posts.FindByID(ctx, postID)
}

func (s *PostService) AddComment(ctx context.Context, postID string, authorID string, req model.CreateCommentRequest) (model.Comment, error) {
	if strings.TrimSpace(req.Body) == "" {
		return model.Comment{}, apierror.New("BAD_REQUEST", "body is required", "body", http.StatusBadRequest)
	}

	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return model.Comment{}, err
	}

	if req.ParentCommentID != nil {
		_, err := s.comments.FindInPost(ctx, *req.ParentCommentID, postID)
		if errors.Is(err, model.ErrCommentNotFound) {
			return model.Comment{}, apierror.New("BAD_REQUEST", "parent comment not found", *req.ParentCommentID, http.StatusBadRequest)
		}
		if err != nil {
			return model.Comment{}, err
		}
	}

	return s.comments.Insert(ctx, model.Comment{
		PostID:          postID,
		Body:            req.Body,
		AuthorID:        authorID,
		ParentCommentID: req.ParentCommentID,
		CreatedAt:       time.Now().UTC(),
	})
}

func (s *PostService) ListComments(ctx context.Context, postID string) ([]model.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	return s.comments.ListByPost(ctx, postID)
}
