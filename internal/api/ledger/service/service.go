package ledgerService

import (
	"GoFinance/internal/api/ledger"
	ledgerRepository "GoFinance/internal/api/ledger/repository"
	"GoFinance/internal/entity"
	"GoFinance/pkg/aggregate"
	"GoFinance/pkg/amqp"
	"GoFinance/pkg/s3"
	"GoFinance/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ILedgerService interface {
	CreateTransaction(ctx context.Context, ownerID string, request ledger.CreateTransactionRequest) (entity.Transaction, error)
	Dashboard(ctx context.Context, ownerID string) (ledger.DashboardResponse, error)
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error
	CategorySummary(ctx context.Context, ownerID string, window aggregate.MonthWindow) (ledger.CategorySummaryResponse, error)
	ExportStatement(ctx context.Context, ownerID string, window aggregate.MonthWindow) (ledger.ExportStatementResponse, error)
	ListCategories() []ledger.CategoryResponse
}

func NewLedgerService(
	log *logrus.Logger,
	repository ledgerRepository.Repository,
	s3Client s3.ItfS3,
	publisher amqp.IPublisher,
	utils utils.IUtils,
) ILedgerService {
	return &ledgerService{
		log:        log,
		repository: repository,
		s3:         s3Client,
		publisher:  publisher,
		utils:      utils,
	}
}

type ledgerService struct {
	log        *logrus.Logger
	repository ledgerRepository.Repository
	s3         s3.ItfS3
	publisher  amqp.IPublisher
	utils      utils.IUtils
}
