package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

var _ repository.VisitRepository = (*VisitRepo)(nil)

// VisitRepo implementación de VisitRepository sobre PostgreSQL (usable con pool o tx).
type VisitRepo struct {
	q Querier
}

// NewVisitRepository construye el adaptador de visitas. Pasar pool o tx (Querier).
func NewVisitRepository(q Querier) *VisitRepo {
	return &VisitRepo{q: q}
}

// Create persiste el borrador.
func (r *VisitRepo) Create(visit *entity.Visit) error {
	query := `
		INSERT INTO visits (id, client_id, status, note, total_price, created_at, closed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		visit.ID, visit.ClientID, visit.Status, visit.Note, visit.TotalPrice,
		visit.CreatedAt, visit.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("insert visit: %w", err)
	}
	return nil
}

// GetByID carga la visita con servicios y materiales, nil si no existe.
func (r *VisitRepo) GetByID(id string) (*entity.Visit, error) {
	query := `SELECT id, client_id, status, note, total_price, created_at, closed_at FROM visits WHERE id = $1`
	var v entity.Visit
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ClientID, &v.Status, &v.Note, &v.TotalPrice, &v.CreatedAt, &v.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get visit: %w", err)
	}
	services, err := r.loadServices(id)
	if err != nil {
		return nil, err
	}
	v.Services = services
	return &v, nil
}

// ListByClient visitas del cliente con servicios, recientes primero.
func (r *VisitRepo) ListByClient(clientID string) ([]*entity.Visit, error) {
	query := `
		SELECT id, client_id, status, note, total_price, created_at, closed_at
		FROM visits WHERE client_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, clientID)
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()
	var list []*entity.Visit
	for rows.Next() {
		var v entity.Visit
		if err := rows.Scan(&v.ID, &v.ClientID, &v.Status, &v.Note, &v.TotalPrice, &v.CreatedAt, &v.ClosedAt); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		list = append(list, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, v := range list {
		services, err := r.loadServices(v.ID)
		if err != nil {
			return nil, err
		}
		v.Services = services
	}
	return list, nil
}

// Update escribe note y totalPrice del borrador.
func (r *VisitRepo) Update(id string, note string, totalPrice *decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE visits SET note = $2, total_price = $3 WHERE id = $1`,
		id, note, totalPrice,
	)
	if err != nil {
		return fmt.Errorf("update visit: %w", err)
	}
	return nil
}

// Close marca la visita como cerrada (terminal). Solo transiciona desde
// saved: si otro proceso la cerró entre la lectura y esta transacción, la
// condición no encuentra fila y devuelve ErrConflict.
func (r *VisitRepo) Close(id string, note string, totalPrice *decimal.Decimal, closedAt time.Time) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE visits SET status = $2, note = $3, total_price = $4, closed_at = $5
		 WHERE id = $1 AND status = $6`,
		id, entity.VisitStatusClosed, note, totalPrice, closedAt, entity.VisitStatusSaved,
	)
	if err != nil {
		return fmt.Errorf("close visit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConflict
	}
	return nil
}

// Delete elimina la visita; servicios y líneas caen por ON DELETE CASCADE.
func (r *VisitRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM visits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}
	return nil
}

// AddService añade un servicio a la visita.
func (r *VisitRepo) AddService(vs *entity.VisitService) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO visit_services (id, visit_id, service_id, sort_order) VALUES ($1, $2, $3, $4)`,
		vs.ID, vs.VisitID, vs.ServiceID, vs.Order,
	)
	if err != nil {
		return fmt.Errorf("insert visit service: %w", err)
	}
	return nil
}

// RemoveService quita el servicio; sus líneas caen por ON DELETE CASCADE.
func (r *VisitRepo) RemoveService(visitID, visitServiceID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM visit_services WHERE id = $1 AND visit_id = $2`,
		visitServiceID, visitID,
	)
	if err != nil {
		return fmt.Errorf("delete visit service: %w", err)
	}
	return nil
}

// MaxServiceOrder devuelve el mayor sort_order de la visita (0 si no hay servicios).
func (r *VisitRepo) MaxServiceOrder(visitID string) (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX(sort_order), 0) FROM visit_services WHERE visit_id = $1`, visitID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max service order: %w", err)
	}
	return max, nil
}

// AddMaterial registra una línea de consumo en un servicio.
func (r *VisitRepo) AddMaterial(vm *entity.VisitMaterial) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO visit_materials (id, visit_service_id, material_id, quantity, unit) VALUES ($1, $2, $3, $4, $5)`,
		vm.ID, vm.VisitServiceID, vm.MaterialID, vm.Quantity, vm.Unit,
	)
	if err != nil {
		return fmt.Errorf("insert visit material: %w", err)
	}
	return nil
}

// UpdateMaterial corrige cantidad y unidad de una línea.
func (r *VisitRepo) UpdateMaterial(vm *entity.VisitMaterial) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE visit_materials SET quantity = $3, unit = $4 WHERE visit_service_id = $1 AND material_id = $2`,
		vm.VisitServiceID, vm.MaterialID, vm.Quantity, vm.Unit,
	)
	if err != nil {
		return fmt.Errorf("update visit material: %w", err)
	}
	return nil
}

// RemoveMaterial quita una línea de consumo.
func (r *VisitRepo) RemoveMaterial(visitServiceID, materialID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM visit_materials WHERE visit_service_id = $1 AND material_id = $2`,
		visitServiceID, materialID,
	)
	if err != nil {
		return fmt.Errorf("delete visit material: %w", err)
	}
	return nil
}

func (r *VisitRepo) loadServices(visitID string) ([]entity.VisitService, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, visit_id, service_id, sort_order FROM visit_services WHERE visit_id = $1 ORDER BY sort_order`,
		visitID,
	)
	if err != nil {
		return nil, fmt.Errorf("list visit services: %w", err)
	}
	defer rows.Close()
	var services []entity.VisitService
	for rows.Next() {
		var vs entity.VisitService
		if err := rows.Scan(&vs.ID, &vs.VisitID, &vs.ServiceID, &vs.Order); err != nil {
			return nil, fmt.Errorf("scan visit service: %w", err)
		}
		services = append(services, vs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range services {
		materials, err := r.loadMaterials(services[i].ID)
		if err != nil {
			return nil, err
		}
		services[i].Materials = materials
	}
	return services, nil
}

func (r *VisitRepo) loadMaterials(visitServiceID string) ([]entity.VisitMaterial, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, visit_service_id, material_id, quantity, unit FROM visit_materials WHERE visit_service_id = $1 ORDER BY id`,
		visitServiceID,
	)
	if err != nil {
		return nil, fmt.Errorf("list visit materials: %w", err)
	}
	defer rows.Close()
	var materials []entity.VisitMaterial
	for rows.Next() {
		var vm entity.VisitMaterial
		if err := rows.Scan(&vm.ID, &vm.VisitServiceID, &vm.MaterialID, &vm.Quantity, &vm.Unit); err != nil {
			return nil, fmt.Errorf("scan visit material: %w", err)
		}
		materials = append(materials, vm)
	}
	return materials, rows.Err()
}
