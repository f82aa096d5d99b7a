package sale

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"resto-pos-backend/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	selectPriceSQL   = regexp.QuoteMeta("SELECT price FROM food_items WHERE business_id = $1 AND name = $2")
	decrementSQL     = regexp.QuoteMeta("UPDATE food_items SET stock = stock - $1 WHERE business_id = $2 AND name = $3 AND stock >= $4")
	insertSaleSQL    = regexp.QuoteMeta("INSERT INTO sales (business_id, food_name, quantity, total_price, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING id")
	insertReceiptSQL = regexp.QuoteMeta("INSERT INTO receipts (business_id, sale_id, total_price, receipt_text, receipt_date) VALUES ($1, $2, $3, $4, NOW())")
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestProcessSaleCommitsMultiLineCart(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSaleRepository(db)
	businessID := uint(3)

	mock.ExpectBegin()

	mock.ExpectQuery(selectPriceSQL).
		WithArgs(businessID, "Chapati").
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(150.0))
	mock.ExpectExec(decrementSQL).
		WithArgs(2, businessID, "Chapati", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(insertSaleSQL).
		WithArgs(businessID, "Chapati", 2, 300.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(41))

	mock.ExpectQuery(selectPriceSQL).
		WithArgs(businessID, "Mandazi").
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(80.0))
	mock.ExpectExec(decrementSQL).
		WithArgs(1, businessID, "Mandazi", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(insertSaleSQL).
		WithArgs(businessID, "Mandazi", 1, 80.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	receiptText := strings.Join([]string{
		RenderReceiptLine("Chapati", 2, 150.0, 300.0),
		RenderReceiptLine("Mandazi", 1, 80.0, 80.0),
	}, "\n")
	mock.ExpectExec(insertReceiptSQL).
		WithArgs(businessID, uint(41), 380.0, receiptText).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectCommit()

	result, err := repo.ProcessSale(context.Background(), businessID, []domain.SaleLineItemRequest{
		{FoodName: "Chapati", Quantity: 2},
		{FoodName: "Mandazi", Quantity: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(41), result.SaleID, "receipt should reference the first sale row")
	assert.Equal(t, 380.0, result.TotalPrice)
	require.Len(t, result.Items, 2)
	assert.Equal(t, 150.0, result.Items[0].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessSaleUnknownFoodRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSaleRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(selectPriceSQL).
		WithArgs(uint(3), "Ghost Burger").
		WillReturnRows(sqlmock.NewRows([]string{"price"}))
	mock.ExpectRollback()

	_, err := repo.ProcessSale(context.Background(), 3, []domain.SaleLineItemRequest{
		{FoodName: "Ghost Burger", Quantity: 1},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFoodItemNotFound)

	var notFound *domain.FoodItemNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Ghost Burger", notFound.FoodName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessSaleInsufficientStockRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSaleRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(selectPriceSQL).
		WithArgs(uint(3), "Chapati").
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(150.0))
	// zero rows affected means the stock guard rejected the decrement
	mock.ExpectExec(decrementSQL).
		WithArgs(10, uint(3), "Chapati", 10).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.ProcessSale(context.Background(), 3, []domain.SaleLineItemRequest{
		{FoodName: "Chapati", Quantity: 10},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var insufficient *domain.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, "Chapati", insufficient.FoodName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failure on a later cart line must undo the decrements and sale rows
// already written for earlier lines.
func TestProcessSaleSecondLineFailureRollsBackFirst(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSaleRepository(db)
	businessID := uint(5)

	mock.ExpectBegin()

	mock.ExpectQuery(selectPriceSQL).
		WithArgs(businessID, "Chapati").
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(150.0))
	mock.ExpectExec(decrementSQL).
		WithArgs(1, businessID, "Chapati", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(insertSaleSQL).
		WithArgs(businessID, "Chapati", 1, 150.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(41))

	mock.ExpectQuery(selectPriceSQL).
		WithArgs(businessID, "Mandazi").
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(80.0))
	mock.ExpectExec(decrementSQL).
		WithArgs(50, businessID, "Mandazi", 50).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectRollback()

	_, err := repo.ProcessSale(context.Background(), businessID, []domain.SaleLineItemRequest{
		{FoodName: "Chapati", Quantity: 1},
		{FoodName: "Mandazi", Quantity: 50},
	})

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Buying exactly the remaining stock must succeed; the guard is >=, not >.
func TestProcessSaleExactStockSucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSaleRepository(db)
	businessID := uint(2)

	mock.ExpectBegin()
	mock.ExpectQuery(selectPriceSQL).
		WithArgs(businessID, "Samosa").
		WillReturnRows(sqlmock.NewRows([]string{"price"}).AddRow(50.0))
	mock.ExpectExec(decrementSQL).
		WithArgs(5, businessID, "Samosa", 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(insertSaleSQL).
		WithArgs(businessID, "Samosa", 5, 250.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(insertReceiptSQL).
		WithArgs(businessID, uint(7), 250.0, RenderReceiptLine("Samosa", 5, 50.0, 250.0)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := repo.ProcessSale(context.Background(), businessID, []domain.SaleLineItemRequest{
		{FoodName: "Samosa", Quantity: 5},
	})

	require.NoError(t, err)
	assert.Equal(t, uint(7), result.SaleID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSalesWithReceipts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSaleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT s.id AS sale_id")).
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"sale_id", "food_name", "quantity", "total_price", "receipt_text"}).
			AddRow(41, "Chapati", 2, 300.0, "<tr>...</tr>").
			AddRow(42, "Mandazi", 1, 80.0, ""))

	sales, err := repo.GetSalesWithReceipts(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, uint(41), sales[0].SaleID)
	assert.Empty(t, sales[1].ReceiptText)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFoodsForSale(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSaleRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, price, stock FROM "food_items" WHERE business_id = $1 ORDER BY name`)).
		WithArgs(uint(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "stock"}).
			AddRow(1, "Chapati", 150.0, 12))

	foods, err := repo.GetFoodsForSale(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Chapati", foods[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
