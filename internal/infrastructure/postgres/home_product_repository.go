package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

var _ repository.HomeProductRepository = (*HomeProductRepo)(nil)

// HomeProductRepo implementación del historial de compras a casa sobre PostgreSQL
// (usable con pool o tx).
type HomeProductRepo struct {
	q Querier
}

// NewHomeProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewHomeProductRepository(q Querier) *HomeProductRepo {
	return &HomeProductRepo{q: q}
}

const homeProductColumns = `id, client_id, material_id, purchase_id, name, quantity, unit, package_size, total_price, note, created_at`

// Create persiste una línea de compra a casa.
func (r *HomeProductRepo) Create(product *entity.HomeProduct) error {
	query := `
		INSERT INTO home_products (` + homeProductColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.ClientID, product.MaterialID, product.PurchaseID,
		product.Name, product.Quantity, product.Unit, product.PackageSize,
		product.TotalPrice, product.Note, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert home product: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID, nil si no existe.
func (r *HomeProductRepo) GetByID(id string) (*entity.HomeProduct, error) {
	query := `SELECT ` + homeProductColumns + ` FROM home_products WHERE id = $1`
	var hp entity.HomeProduct
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&hp.ID, &hp.ClientID, &hp.MaterialID, &hp.PurchaseID, &hp.Name,
		&hp.Quantity, &hp.Unit, &hp.PackageSize, &hp.TotalPrice, &hp.Note, &hp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get home product: %w", err)
	}
	return &hp, nil
}

// ListByClient historial del cliente, reciente primero.
func (r *HomeProductRepo) ListByClient(clientID string) ([]*entity.HomeProduct, error) {
	query := `SELECT ` + homeProductColumns + ` FROM home_products WHERE client_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list home products: %w", err)
	}
	defer rows.Close()
	var list []*entity.HomeProduct
	for rows.Next() {
		var hp entity.HomeProduct
		if err := rows.Scan(&hp.ID, &hp.ClientID, &hp.MaterialID, &hp.PurchaseID, &hp.Name,
			&hp.Quantity, &hp.Unit, &hp.PackageSize, &hp.TotalPrice, &hp.Note, &hp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan home product: %w", err)
		}
		list = append(list, &hp)
	}
	return list, rows.Err()
}

// DeleteByPurchase borra todas las líneas de una misma compra.
func (r *HomeProductRepo) DeleteByPurchase(purchaseID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM home_products WHERE purchase_id = $1`, purchaseID)
	if err != nil {
		return fmt.Errorf("delete by purchase: %w", err)
	}
	return nil
}

// Delete borra una línea suelta.
func (r *HomeProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM home_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete home product: %w", err)
	}
	return nil
}
