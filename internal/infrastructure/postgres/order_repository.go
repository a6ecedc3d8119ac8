package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la orden y sus líneas.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, status, note, created_at, ordered_at, delivered_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.Note, order.CreatedAt, order.OrderedAt, order.DeliveredAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for i := range order.Items {
		item := &order.Items[i]
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO order_items (id, order_id, material_id, quantity, price) VALUES ($1, $2, $3, $4, $5)`,
			item.ID, item.OrderID, item.MaterialID, item.Quantity, item.Price,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la orden con sus líneas, nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT id, status, note, created_at, ordered_at, delivered_at FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.Status, &o.Note, &o.CreatedAt, &o.OrderedAt, &o.DeliveredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.listItems(id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

// List órdenes con líneas, recientes primero.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	query := `SELECT id, status, note, created_at, ordered_at, delivered_at FROM orders ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Status, &o.Note, &o.CreatedAt, &o.OrderedAt, &o.DeliveredAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.listItems(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

// UpdateStatus escribe estado y timestamps de transición. La condición sobre
// el estado previo corta la carrera entre dos transiciones concurrentes: la
// segunda no encuentra fila y recibe ErrConflict.
func (r *OrderRepo) UpdateStatus(id, from, to string, orderedAt, deliveredAt *time.Time) error {
	query := `
		UPDATE orders SET status = $3,
			ordered_at = COALESCE($4, ordered_at),
			delivered_at = COALESCE($5, delivered_at)
		WHERE id = $1 AND status = $2`
	tag, err := r.q.Exec(context.Background(), query, id, from, to, orderedAt, deliveredAt)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// Delete elimina la orden; las líneas caen por ON DELETE CASCADE.
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

func (r *OrderRepo) listItems(orderID string) ([]entity.OrderItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, order_id, material_id, quantity, price FROM order_items WHERE order_id = $1 ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MaterialID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
