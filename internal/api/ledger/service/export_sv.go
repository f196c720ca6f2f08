package ledgerService

import (
	"GoFinance/internal/api/ledger"
	"GoFinance/internal/entity"
	"GoFinance/pkg/aggregate"
	"GoFinance/pkg/format"
	"fmt"

	"github.com/xuri/excelize/v2"
	"golang.org/x/net/context"
)

const statementSheet = "Extrato"

// ExportStatement builds an XLSX statement of the month's transactions,
// uploads it and returns a short-lived download link.
func (s *ledgerService) ExportStatement(ctx context.Context, ownerID string, window aggregate.MonthWindow) (ledger.ExportStatementResponse, error) {
	if !window.Valid() {
		return ledger.ExportStatementResponse{}, ledger.ErrInvalidMonthWindow
	}

	transactions, err := s.repository.GetCollection(ctx, ownerID)
	if err != nil {
		return ledger.ExportStatementResponse{}, err
	}

	statement := make([]entity.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if window.Contains(transaction.Date) {
			statement = append(statement, transaction)
		}
	}

	workbook, err := s.buildStatementWorkbook(statement, window)
	if err != nil {
		s.log.Errorf("failed to build statement workbook for user %s: %v", ownerID, err)
		return ledger.ExportStatementResponse{}, ledger.ErrExportStatement
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		s.log.Errorf("failed to serialize statement workbook for user %s: %v", ownerID, err)
		return ledger.ExportStatementResponse{}, ledger.ErrExportStatement
	}

	objectKey := fmt.Sprintf("statements/%s/%04d-%02d.xlsx", ownerID, window.Year, int(window.Month))
	fileURL, err := s.s3.UploadBytes(objectKey, buffer.Bytes(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err != nil {
		s.log.Errorf("failed to upload statement for user %s: %v", ownerID, err)
		return ledger.ExportStatementResponse{}, ledger.ErrExportStatement
	}

	downloadURL, err := s.s3.PresignUrl(fileURL)
	if err != nil {
		s.log.Errorf("failed to presign statement url for user %s: %v", ownerID, err)
		return ledger.ExportStatementResponse{}, ledger.ErrExportStatement
	}

	return ledger.ExportStatementResponse{
		Month:       window.Label(),
		DownloadURL: downloadURL,
	}, nil
}

func (s *ledgerService) buildStatementWorkbook(statement []entity.Transaction, window aggregate.MonthWindow) (*excelize.File, error) {
	workbook := excelize.NewFile()
	if err := workbook.SetSheetName(workbook.GetSheetName(0), statementSheet); err != nil {
		return nil, err
	}

	headers := []interface{}{"Nome", "Valor", "Tipo", "Categoria", "Data"}
	if err := workbook.SetSheetRow(statementSheet, "A1", &headers); err != nil {
		return nil, err
	}

	var balance float64
	for i, transaction := range statement {
		amount, err := transaction.ParseAmount()
		if err != nil {
			return nil, err
		}

		direction := "Entrada"
		if transaction.Type == string(entity.TransactionTypeExpense) {
			direction = "Saída"
			amount = -amount
		}
		balance += amount

		categoryName := transaction.Category
		if category, ok := entity.CategoryByKey(transaction.Category); ok {
			categoryName = category.Name
		}

		row := []interface{}{
			transaction.Name,
			format.Currency(amount),
			direction,
			categoryName,
			format.ShortDate(transaction.Date),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := workbook.SetSheetRow(statementSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	footer := []interface{}{fmt.Sprintf("Saldo de %s", window.Label()), format.Currency(balance)}
	footerCell := fmt.Sprintf("A%d", len(statement)+3)
	if err := workbook.SetSheetRow(statementSheet, footerCell, &footer); err != nil {
		return nil, err
	}

	return workbook, nil
}
