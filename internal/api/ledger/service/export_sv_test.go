package ledgerService

import (
	"GoFinance/internal/api/ledger"
	"GoFinance/internal/entity"
	"GoFinance/pkg/aggregate"
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/net/context"
)

func TestExportStatement(t *testing.T) {
	fx := newServiceFixture(t)
	fx.repo.collections["user-1"] = []entity.Transaction{
		{ID: "t1", Name: "Salário", Amount: "5000", Type: "up", Category: "salary", Date: time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "t2", Name: "Mercado", Amount: "350.50", Type: "down", Category: "food", Date: time.Date(2022, 4, 13, 0, 0, 0, 0, time.UTC)},
		{ID: "t3", Name: "Gasolina", Amount: "200", Type: "down", Category: "car", Date: time.Date(2022, 5, 2, 0, 0, 0, 0, time.UTC)},
	}

	export, err := fx.service.ExportStatement(context.Background(), "user-1", aggregate.MonthWindow{Month: time.April, Year: 2022})
	require.NoError(t, err)

	assert.Equal(t, "abril, 2022", export.Month)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/statements/user-1/2022-04.xlsx?signed=true", export.DownloadURL)
	assert.Equal(t, "statements/user-1/2022-04.xlsx", fx.s3.uploadedKey)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", fx.s3.uploadedType)

	workbook, err := excelize.OpenReader(bytes.NewReader(fx.s3.uploadedData))
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Extrato")
	require.NoError(t, err)

	// Header, two April rows, a blank spacer, then the balance line. May
	// stays out of the April statement.
	require.GreaterOrEqual(t, len(rows), 4)
	assert.Equal(t, []string{"Nome", "Valor", "Tipo", "Categoria", "Data"}, rows[0])
	assert.Equal(t, "Salário", rows[1][0])
	assert.Equal(t, "R$ 5.000,00", rows[1][1])
	assert.Equal(t, "Entrada", rows[1][2])
	assert.Equal(t, "Mercado", rows[2][0])
	assert.Equal(t, "-R$ 350,50", rows[2][1])
	assert.Equal(t, "Saída", rows[2][2])

	balanceRow := rows[len(rows)-1]
	assert.Equal(t, "Saldo de abril, 2022", balanceRow[0])
	assert.Equal(t, "R$ 4.649,50", balanceRow[1])
}

func TestExportStatementInvalidWindow(t *testing.T) {
	fx := newServiceFixture(t)

	_, err := fx.service.ExportStatement(context.Background(), "user-1", aggregate.MonthWindow{Month: 0, Year: 2022})
	assert.ErrorIs(t, err, ledger.ErrInvalidMonthWindow)
	assert.Empty(t, fx.s3.uploadedKey)
}
