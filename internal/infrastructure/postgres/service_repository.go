package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

var _ repository.ServiceRepository = (*ServiceRepo)(nil)

// ServiceRepo implementación del catálogo de servicios sobre PostgreSQL
// (usable con pool o tx).
type ServiceRepo struct {
	q Querier
}

// NewServiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServiceRepository(q Querier) *ServiceRepo {
	return &ServiceRepo{q: q}
}

// CreateGroup persiste un grupo de servicios.
func (r *ServiceRepo) CreateGroup(group *entity.ServiceGroup) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO service_groups (id, name, sort_order) VALUES ($1, $2, $3)`,
		group.ID, group.Name, group.Order,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert service group: %w", err)
	}
	return nil
}

// ListGroups grupos por orden.
func (r *ServiceRepo) ListGroups() ([]*entity.ServiceGroup, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, sort_order FROM service_groups ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("list service groups: %w", err)
	}
	defer rows.Close()
	var list []*entity.ServiceGroup
	for rows.Next() {
		var g entity.ServiceGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Order); err != nil {
			return nil, fmt.Errorf("scan service group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// MaxGroupOrder devuelve el mayor sort_order (0 si no hay grupos).
func (r *ServiceRepo) MaxGroupOrder() (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(sort_order), 0) FROM service_groups`).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max service group order: %w", err)
	}
	return max, nil
}

// DeleteGroup elimina un grupo por ID.
func (r *ServiceRepo) DeleteGroup(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM service_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service group: %w", err)
	}
	return nil
}

// Create persiste un servicio.
func (r *ServiceRepo) Create(service *entity.Service) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO services (id, group_id, name, sort_order) VALUES ($1, $2, $3, $4)`,
		service.ID, service.GroupID, service.Name, service.Order,
	)
	if err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID, nil si no existe.
func (r *ServiceRepo) GetByID(id string) (*entity.Service, error) {
	var s entity.Service
	err := r.q.QueryRow(context.Background(),
		`SELECT id, group_id, name, sort_order FROM services WHERE id = $1`, id).Scan(
		&s.ID, &s.GroupID, &s.Name, &s.Order,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

// ListByGroup servicios del grupo por orden.
func (r *ServiceRepo) ListByGroup(groupID string) ([]*entity.Service, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, group_id, name, sort_order FROM services WHERE group_id = $1 ORDER BY sort_order`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var list []*entity.Service
	for rows.Next() {
		var s entity.Service
		if err := rows.Scan(&s.ID, &s.GroupID, &s.Name, &s.Order); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// MaxOrder devuelve el mayor sort_order del grupo (0 si no hay servicios).
func (r *ServiceRepo) MaxOrder(groupID string) (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(sort_order), 0) FROM services WHERE group_id = $1`, groupID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max service order: %w", err)
	}
	return max, nil
}

// Delete elimina un servicio por ID.
func (r *ServiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
