package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, gtin, gcp, name, weight, lower_threshold, minimum_order_quantity, discontinued, created_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Gtin, &p.Gcp, &p.Name, &p.Weight,
		&p.LowerThreshold, &p.MinimumOrderQuantity, &p.Discontinued, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, gtin, gcp, name, weight, lower_threshold, minimum_order_quantity, discontinued, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Gtin, product.Gcp, product.Name, product.Weight,
		product.LowerThreshold, product.MinimumOrderQuantity, product.Discontinued, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: gtin %s", domain.ErrDuplicate, product.Gtin)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por su id interno.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByGtin obtiene un producto por su gtin.
func (r *ProductRepo) GetByGtin(gtin string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE gtin = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, gtin))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by gtin: %w", err)
	}
	return p, nil
}

// GetByGtins resuelve varios gtins en un viaje. El mapa omite los no encontrados.
func (r *ProductRepo) GetByGtins(gtins []string) (map[string]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE gtin = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, gtins)
	if err != nil {
		return nil, fmt.Errorf("get products by gtin: %w", err)
	}
	defer rows.Close()

	result := make(map[string]*entity.Product, len(gtins))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		result[p.Gtin] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return result, nil
}

// Discontinue marca el producto como descontinuado. Devuelve false si el gtin
// no existe; repetir sobre un producto ya descontinuado afecta la fila igual
// (éxito idempotente).
func (r *ProductRepo) Discontinue(gtin string) (bool, error) {
	query := `UPDATE products SET discontinued = true WHERE gtin = $1`
	cmd, err := r.q.Exec(context.Background(), query, gtin)
	if err != nil {
		return false, fmt.Errorf("discontinue product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
