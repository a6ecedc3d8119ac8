package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el libro es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, material_id, transaction_id, type, quantity, note, client_id, visit_id, total_price, created_at`

// Create persiste una entrada del libro.
func (r *MovementRepo) Create(movement *entity.MaterialMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO material_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.MaterialID, movement.TransactionID, movement.Type,
		movement.Quantity, movement.Note, movement.ClientID, movement.VisitID,
		movement.TotalPrice, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// ListByMaterial lista por recencia; typeFilter vacío = todas las causas.
func (r *MovementRepo) ListByMaterial(materialID, typeFilter string, limit int) ([]*entity.MaterialMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM material_movements WHERE material_id = $1`
	args := []any{materialID}
	pos := 2
	if typeFilter != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, typeFilter)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list by material: %w", err)
	}
	return r.scanRows(rows)
}

// ListByTypes alimenta el historial de ventas/consumos; clientID vacío = todos.
func (r *MovementRepo) ListByTypes(types []string, clientID string) ([]*entity.MaterialMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM material_movements WHERE type = ANY($1)`
	args := []any{types}
	if clientID != "" {
		query += ` AND client_id = $2`
		args = append(args, clientID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list by types: %w", err)
	}
	return r.scanRows(rows)
}

// CountByMaterial cuenta las entradas del libro de un material.
func (r *MovementRepo) CountByMaterial(materialID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM material_movements WHERE material_id = $1`, materialID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count by material: %w", err)
	}
	return count, nil
}

// SumByMaterial suma con signo el libro de un material (proyección del saldo).
func (r *MovementRepo) SumByMaterial(materialID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity), 0) FROM material_movements WHERE material_id = $1`, materialID).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum by material: %w", err)
	}
	return sum, nil
}

func (r *MovementRepo) scanRows(rows pgx.Rows) ([]*entity.MaterialMovement, error) {
	defer rows.Close()
	var list []*entity.MaterialMovement
	for rows.Next() {
		var m entity.MaterialMovement
		if err := rows.Scan(&m.ID, &m.MaterialID, &m.TransactionID, &m.Type, &m.Quantity,
			&m.Note, &m.ClientID, &m.VisitID, &m.TotalPrice, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
