package ledgerRepository

import (
	"GoFinance/internal/entity"
	redisPkg "GoFinance/pkg/redis"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const defaultNamespace = "@gofinance"

// Repository is the transaction store: one serialized collection per user,
// mutated only by whole-collection read-modify-write. There is no
// concurrent-writer protection; a single active writer per user is assumed.
type Repository interface {
	GetCollection(ctx context.Context, ownerID string) ([]entity.Transaction, error)
	Append(ctx context.Context, ownerID string, transaction entity.Transaction) error
	Remove(ctx context.Context, ownerID string, transactionID string) error
}

func New(redisServer redisPkg.IRedis, log *logrus.Logger) Repository {
	namespace := os.Getenv("STORAGE_NAMESPACE")
	if namespace == "" {
		namespace = defaultNamespace
	}

	return &transactionRepository{
		kv:        redisServer,
		log:       log,
		namespace: namespace,
	}
}

type transactionRepository struct {
	kv        redisPkg.IRedis
	log       *logrus.Logger
	namespace string
}

func (r *transactionRepository) collectionKey(ownerID string) string {
	return fmt.Sprintf("%s:transactions_user:%s", r.namespace, ownerID)
}
