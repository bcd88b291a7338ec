package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"ophelia-market/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var productRowColumns = []string{
	"id", "title", "description", "category", "gender", "size", "price",
	"condition", "seller_id", "seller_phone", "images", "created_at", "sold",
}

func setupProductRepo(t *testing.T) (ProductRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewProductRepository(mock, zap.NewNop()), mock
}

func sampleProduct() *entity.Product {
	return &entity.Product{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.MustParse("7b4c1c1e-8f55-4d0b-9a57-0a7f3f0b5a11"),
			CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		Title:       "Block print kurta",
		Description: "Worn twice",
		Category:    entity.CategoryTops,
		Gender:      entity.GenderWomen,
		Size:        "M",
		Price:       450,
		Condition:   entity.ConditionGood,
		SellerID:    uuid.MustParse("c0a8012e-0000-4000-8000-000000000001"),
		SellerPhone: "9876543210",
		Images:      []string{"https://cdn.example.com/uploads/a.jpg", "https://cdn.example.com/uploads/b.jpg"},
		Sold:        false,
	}
}

func productRow(rows *pgxmock.Rows, p *entity.Product) *pgxmock.Rows {
	return rows.AddRow(
		p.ID, p.Title, p.Description, p.Category, p.Gender, p.Size, p.Price,
		p.Condition, p.SellerID, p.SellerPhone, p.Images, p.CreatedAt, p.Sold,
	)
}

func TestProductRepository_Create(t *testing.T) {
	repo, mock := setupProductRepo(t)
	p := sampleProduct()

	mock.ExpectExec("INSERT INTO products").
		WithArgs(
			p.ID, p.Title, p.Description, p.Category, p.Gender, p.Size,
			p.Price, p.Condition, p.SellerID, p.SellerPhone, p.Images,
			p.CreatedAt, p.Sold,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), p))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Create_Error(t *testing.T) {
	repo, mock := setupProductRepo(t)
	p := sampleProduct()

	mock.ExpectExec("INSERT INTO products").
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), p)
	assert.ErrorContains(t, err, "create product")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindAll_NewestFirst(t *testing.T) {
	repo, mock := setupProductRepo(t)

	newer := sampleProduct()
	older := sampleProduct()
	older.ID = uuid.New()
	older.CreatedAt = newer.CreatedAt.Add(-time.Hour)

	rows := pgxmock.NewRows(productRowColumns)
	productRow(rows, newer)
	productRow(rows, older)

	mock.ExpectQuery(`FROM products ORDER BY created_at DESC`).WillReturnRows(rows)

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, newer.ID, products[0].ID)
	assert.Equal(t, older.ID, products[1].ID)
	assert.Equal(t, newer.Images, products[0].Images)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_FindAll_Empty(t *testing.T) {
	repo, mock := setupProductRepo(t)

	mock.ExpectQuery(`FROM products ORDER BY created_at DESC`).
		WillReturnRows(pgxmock.NewRows(productRowColumns))

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestProductRepository_FindByID(t *testing.T) {
	repo, mock := setupProductRepo(t)
	p := sampleProduct()

	mock.ExpectQuery(`FROM products WHERE id = \$1`).
		WithArgs(p.ID).
		WillReturnRows(productRow(pgxmock.NewRows(productRowColumns), p))

	got, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, entity.CategoryTops, got.Category)
	assert.False(t, got.Sold)
}

func TestProductRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := setupProductRepo(t)
	id := uuid.New()

	mock.ExpectQuery(`FROM products WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepository_FindBySellerID(t *testing.T) {
	repo, mock := setupProductRepo(t)
	p := sampleProduct()

	mock.ExpectQuery(`FROM products WHERE seller_id = \$1 ORDER BY created_at DESC`).
		WithArgs(p.SellerID).
		WillReturnRows(productRow(pgxmock.NewRows(productRowColumns), p))

	products, err := repo.FindBySellerID(context.Background(), p.SellerID)
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductRepository_MarkAsSold_Twice(t *testing.T) {
	repo, mock := setupProductRepo(t)
	id := uuid.New()

	for i := 0; i < 2; i++ {
		mock.ExpectExec(`UPDATE products SET sold = TRUE WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	}

	assert.NoError(t, repo.MarkAsSold(context.Background(), id))
	assert.NoError(t, repo.MarkAsSold(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_MarkAsSold_Missing(t *testing.T) {
	repo, mock := setupProductRepo(t)
	id := uuid.New()

	mock.ExpectExec(`UPDATE products SET sold = TRUE`).
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.MarkAsSold(context.Background(), id), ErrNoRowsAffected)
}
