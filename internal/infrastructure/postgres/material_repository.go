package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)
var _ repository.MaterialGroupRepository = (*MaterialGroupRepo)(nil)

// MaterialRepo implementación de MaterialRepository sobre PostgreSQL (usable con pool o tx).
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de materiales. Pasar pool o tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, group_id, name, unit, package_size, stock_quantity, min_stock, is_retail_product, created_at, updated_at`

// Create persiste un material nuevo.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `
		INSERT INTO materials (` + materialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.GroupID, material.Name, material.Unit,
		material.PackageSize, material.StockQuantity, material.MinStock,
		material.IsRetailProduct, material.CreatedAt, material.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID, nil si no existe.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get material")
}

// GetForUpdate obtiene el material y bloquea la fila (SELECT FOR UPDATE).
func (r *MaterialRepo) GetForUpdate(id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get material for update")
}

// List lista materiales; groupID vacío = todos.
func (r *MaterialRepo) List(groupID string) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials`
	args := []any{}
	if groupID != "" {
		query += ` WHERE group_id = $1`
		args = append(args, groupID)
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return r.scanRows(rows)
}

// ListBelowMinStock materiales con saldo en o bajo su umbral (umbral > 0).
func (r *MaterialRepo) ListBelowMinStock() ([]*entity.Material, error) {
	query := `
		SELECT ` + materialColumns + `
		FROM materials WHERE min_stock > 0 AND stock_quantity <= min_stock
		ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list below min stock: %w", err)
	}
	return r.scanRows(rows)
}

// Update actualiza la ficha. No escribe stock_quantity: el saldo solo se mueve vía UpdateStock.
func (r *MaterialRepo) Update(material *entity.Material) error {
	query := `
		UPDATE materials SET group_id = $2, name = $3, unit = $4, package_size = $5,
			min_stock = $6, is_retail_product = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.GroupID, material.Name, material.Unit,
		material.PackageSize, material.MinStock, material.IsRetailProduct, material.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// UpdateStock escribe el saldo. Solo debe llamarse bajo la tx del coordinador,
// con la fila ya bloqueada por GetForUpdate.
func (r *MaterialRepo) UpdateStock(id string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE materials SET stock_quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// Delete elimina un material por ID.
func (r *MaterialRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

func (r *MaterialRepo) scanOne(row pgx.Row, op string) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(
		&m.ID, &m.GroupID, &m.Name, &m.Unit, &m.PackageSize,
		&m.StockQuantity, &m.MinStock, &m.IsRetailProduct, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}

func (r *MaterialRepo) scanRows(rows pgx.Rows) ([]*entity.Material, error) {
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.GroupID, &m.Name, &m.Unit, &m.PackageSize,
			&m.StockQuantity, &m.MinStock, &m.IsRetailProduct, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// MaterialGroupRepo implementación de MaterialGroupRepository sobre PostgreSQL.
type MaterialGroupRepo struct {
	q Querier
}

// NewMaterialGroupRepository construye el adaptador de grupos de materiales.
func NewMaterialGroupRepository(q Querier) *MaterialGroupRepo {
	return &MaterialGroupRepo{q: q}
}

// Create persiste un grupo.
func (r *MaterialGroupRepo) Create(group *entity.MaterialGroup) error {
	query := `INSERT INTO material_groups (id, name, sort_order, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, group.ID, group.Name, group.Order, group.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert material group: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo por ID, nil si no existe.
func (r *MaterialGroupRepo) GetByID(id string) (*entity.MaterialGroup, error) {
	query := `SELECT id, name, sort_order, created_at FROM material_groups WHERE id = $1`
	var g entity.MaterialGroup
	err := r.q.QueryRow(context.Background(), query, id).Scan(&g.ID, &g.Name, &g.Order, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material group: %w", err)
	}
	return &g, nil
}

// List grupos por orden.
func (r *MaterialGroupRepo) List() ([]*entity.MaterialGroup, error) {
	query := `SELECT id, name, sort_order, created_at FROM material_groups ORDER BY sort_order`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list material groups: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialGroup
	for rows.Next() {
		var g entity.MaterialGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Order, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// MaxOrder devuelve el mayor sort_order (0 si no hay grupos).
func (r *MaterialGroupRepo) MaxOrder() (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(sort_order), 0) FROM material_groups`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max group order: %w", err)
	}
	return max, nil
}

// Delete elimina un grupo por ID.
func (r *MaterialGroupRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM material_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material group: %w", err)
	}
	return nil
}
