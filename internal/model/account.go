package model

import "time"

// Account is the identity record owned by the Postgres user store. The
// password hash never crosses the handler boundary; responses use
// PublicAccount.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type PublicAccount struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (a Account) Public() PublicAccount {
	return PublicAccount{ID: a.ID, Username: a.Username, Email: a.Email}
}

// TokenClaims is the verified claim set of an access token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}
