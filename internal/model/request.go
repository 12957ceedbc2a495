package model

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type CreatePostRequest struct {
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	MediaKeys []string `json:"media_keys"`
}

type CreateCommentRequest struct {
	Body            string  `json:"body"`
	ParentCommentID *string `json:"parent_comment_id"`
}

type PresignResponse struct {
	MediaKey  string `json:"media_key"`
	UploadURL string `json:"upload_url"`
}
