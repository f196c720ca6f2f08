package utils

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	NewTransactionID() string
}

type utils struct{}

func New() IUtils {
	return &utils{}
}

// NewULIDFromTimestamp builds the sortable ids used for request tracing.
func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// NewTransactionID returns a v4 UUID, the id format the mobile client has
// always written into stored collections.
func (u *utils) NewTransactionID() string {
	return uuid.NewString()
}
