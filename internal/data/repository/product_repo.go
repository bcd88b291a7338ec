package repository

import (
	"context"
	"errors"
	"fmt"

	"ophelia-market/internal/data/entity"
	"ophelia-market/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// FindAll returns every product, newest first.
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error)
	MarkAsSold(ctx context.Context, id uuid.UUID) error
}

const productColumns = `
	id, title, description, category, gender, size, price, condition,
	seller_id, seller_phone, images, created_at, sold
`

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, title, description, category, gender, size,
		                      price, condition, seller_id, seller_phone, images,
		                      created_at, sold)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.Title,
		product.Description,
		product.Category,
		product.Gender,
		product.Size,
		product.Price,
		product.Condition,
		product.SellerID,
		product.SellerPhone,
		product.Images,
		product.CreatedAt,
		product.Sold,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("seller_id", product.SellerID.String()),
			zap.String("title", product.Title),
		)
		return fmt.Errorf("create product %q: %w", product.Title, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return product, nil
}

func (r *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`

	products, err := r.queryProducts(ctx, query)
	if err != nil {
		r.log.Error("Failed to find products", zap.Error(err))
		return nil, fmt.Errorf("find products: %w", err)
	}

	return products, nil
}

func (r *productRepository) FindBySellerID(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE seller_id = $1 ORDER BY created_at DESC`

	products, err := r.queryProducts(ctx, query, sellerID)
	if err != nil {
		r.log.Error("Failed to find products by seller",
			zap.Error(err),
			zap.String("seller_id", sellerID.String()),
		)
		return nil, fmt.Errorf("find products by seller %s: %w", sellerID.String(), err)
	}

	return products, nil
}

// MarkAsSold sets sold = true. Running it on an already sold product still
// matches the row, so repeated calls succeed.
func (r *productRepository) MarkAsSold(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE products SET sold = TRUE WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark product as sold",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("mark product %s as sold: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]*entity.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Category,
		&p.Gender,
		&p.Size,
		&p.Price,
		&p.Condition,
		&p.SellerID,
		&p.SellerPhone,
		&p.Images,
		&p.CreatedAt,
		&p.Sold,
	)
	if err != nil {
		return nil, err
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	return &p, nil
}
