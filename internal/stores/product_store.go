package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"ecom-analytics/internal/models"
)

// ErrProductNotFound is returned when no product row matches the given ID.
var ErrProductNotFound = errors.New("product not found")

//go:generate mockgen -source=product_store.go -destination=./mocks/product_store_mock.go -package=mocks
type ProductStore interface {
	GetAll(ctx context.Context) ([]*models.Product, error)
	// GetByID returns ErrProductNotFound when the row does not exist.
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetByCategory(ctx context.Context, category string) ([]*models.Product, error)
	GetLowStock(ctx context.Context, threshold int) ([]*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
	// MostOrderedIDs ranks product IDs by total ordered quantity, capped at limit.
	MostOrderedIDs(ctx context.Context, limit int) ([]int64, error)
}

const productColumns = "id, name, description, price, category, stock_quantity, image_url, created_at, updated_at"

type productStore struct {
	db *sql.DB
}

func NewProductStore(db *sql.DB) ProductStore {
	return &productStore{db: db}
}

func (s *productStore) GetAll(ctx context.Context) ([]*models.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products ORDER BY id", productColumns)
	return s.queryProducts(ctx, query)
}

func (s *productStore) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)
	row := s.db.QueryRowContext(ctx, query, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	return product, nil
}

func (s *productStore) GetByCategory(ctx context.Context, category string) ([]*models.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE category = $1 ORDER BY id", productColumns)
	return s.queryProducts(ctx, query, category)
}

func (s *productStore) GetLowStock(ctx context.Context, threshold int) ([]*models.Product, error) {
	query := fmt.Sprintf("SELECT %s FROM products WHERE stock_quantity <= $1 ORDER BY stock_quantity", productColumns)
	return s.queryProducts(ctx, query, threshold)
}

func (s *productStore) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	query := `INSERT INTO products (name, description, price, category, stock_quantity, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	err := s.db.QueryRowContext(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.StockQuantity,
		product.ImageURL,
		product.CreatedAt,
		product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}
	return product, nil
}

func (s *productStore) Update(ctx context.Context, product *models.Product) error {
	query := `UPDATE products
		SET name = $1, description = $2, price = $3, category = $4, stock_quantity = $5, image_url = $6, updated_at = $7
		WHERE id = $8`

	result, err := s.db.ExecContext(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.StockQuantity,
		product.ImageURL,
		product.UpdatedAt,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", ErrProductNotFound, product.ID)
	}
	return nil
}

func (s *productStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	return nil
}

func (s *productStore) MostOrderedIDs(ctx context.Context, limit int) ([]int64, error) {
	query := `SELECT product_id FROM order_items
		GROUP BY product_id
		ORDER BY SUM(quantity) DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query most ordered products: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan product id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate most ordered products: %w", err)
	}
	return ids, nil
}

func (s *productStore) queryProducts(ctx context.Context, query string, args ...any) ([]*models.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var product models.Product
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Category,
		&product.StockQuantity,
		&product.ImageURL,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}
