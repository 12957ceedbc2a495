package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"minisocial/internal/model"
)

type fakeUserRepo struct {
	mu       sync.Mutex
	accounts map[string]model.Account
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{accounts: map[string]model.Account{}}
}

func (r *fakeUserRepo) Create(_ context.Context, account model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if strings.EqualFold(existing.Username, account.Username) || strings.EqualFold(existing.Email, account.Email) {
			return model.ErrUserAlreadyExists
		}
	}

	r.accounts[account.ID] = account
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return model.Account{}, model.ErrUserNotFound
	}

	return account, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if strings.EqualFold(account.Email, email) {
			return account, nil
		}
	}

	return model.Account{}, model.ErrUserNotFound
}

func (r *fakeUserRepo) delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.accounts, id)
}

type fakePostRepo struct {
	mu    sync.Mutex
	posts []model.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{}
}

func (r *fakePostRepo) Insert(_ context.Context, post model.Post) (model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	post.ID = bson.NewObjectID().Hex()
	r.posts = append(r.posts, post)
	return post, nil
}

func (r *fakePostRepo) FindByID(_ context.Context, id string) (model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, post := range r.posts {
		if post.ID == id {
			return post, nil
		}
	}

	return model.Post{}, model.ErrPostNotFound
}

func (r *fakePostRepo) ListRecent(_ context.Context, limit int64) ([]model.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Post, 0, len(r.posts))
	for i := len(r.posts) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, r.posts[i])
	}

	return out, nil
}

type fakeCommentRepo struct {
	mu       sync.Mutex
	comments []model.Comment
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{}
}

func (r *fakeCommentRepo) Insert(_ context.Context, comment model.Comment) (model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comment.ID = bson.NewObjectID().Hex()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	r.comments = append(r.comments, comment)
	return comment, nil
}

func (r *fakeCommentRepo) FindInPost(_ context.Context, id string, postID string) (model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, comment := range r.comments {
		if comment.ID == id && comment.PostID == postID {
			return comment, nil
		}
	}

	return model.Comment{}, model.ErrCommentNotFound
}

func (r *fakeCommentRepo) ListByPost(_ context.Context, postID string) ([]model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Comment, 0)
	for _, comment := range r.comments {
		if comment.PostID == postID {
			out = append(out, comment)
		}
	}

	return out, nil
}
