package entity

import "time"

type User struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	PhotoURL  string    `db:"photo_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// UserLoginData is the identity carried by an access token. It scopes every
// ledger storage key.
type UserLoginData struct {
	ID       string
	Name     string
	Email    string
	PhotoURL string
}
