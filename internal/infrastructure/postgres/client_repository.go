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

var _ repository.ClientRepository = (*ClientRepo)(nil)
var _ repository.ClientGroupRepository = (*ClientGroupRepo)(nil)

// ClientRepo implementación de ClientRepository sobre PostgreSQL (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador de clientes. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un cliente nuevo.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, group_id, first_name, last_name, phone, avatar, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.GroupID, client.FirstName, client.LastName,
		client.Phone, client.Avatar, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID, nil si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `
		SELECT id, group_id, first_name, last_name, phone, avatar, created_at, updated_at
		FROM clients WHERE id = $1`
	var c entity.Client
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.GroupID, &c.FirstName, &c.LastName, &c.Phone, &c.Avatar, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List clientes; groupID vacío = todos.
func (r *ClientRepo) List(groupID string) ([]*entity.Client, error) {
	query := `SELECT id, group_id, first_name, last_name, phone, avatar, created_at, updated_at FROM clients`
	args := []any{}
	if groupID != "" {
		query += ` WHERE group_id = $1`
		args = append(args, groupID)
	}
	query += ` ORDER BY last_name, first_name`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.GroupID, &c.FirstName, &c.LastName, &c.Phone, &c.Avatar, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza la ficha del cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET group_id = $2, first_name = $3, last_name = $4, phone = $5, avatar = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.GroupID, client.FirstName, client.LastName,
		client.Phone, client.Avatar, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete elimina un cliente; notas y visitas caen por ON DELETE CASCADE.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

// AddNote persiste una nota.
func (r *ClientRepo) AddNote(note *entity.ClientNote) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO client_notes (id, client_id, text, created_at) VALUES ($1, $2, $3, $4)`,
		note.ID, note.ClientID, note.Text, note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert client note: %w", err)
	}
	return nil
}

// ListNotes notas del cliente, recientes primero.
func (r *ClientRepo) ListNotes(clientID string) ([]*entity.ClientNote, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, client_id, text, created_at FROM client_notes WHERE client_id = $1 ORDER BY created_at DESC`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("list client notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClientNote
	for rows.Next() {
		var n entity.ClientNote
		if err := rows.Scan(&n.ID, &n.ClientID, &n.Text, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan client note: %w", err)
		}
		list = append(list, &n)
	}
	return list, rows.Err()
}

// DeleteNote elimina una nota por ID.
func (r *ClientRepo) DeleteNote(noteID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM client_notes WHERE id = $1`, noteID)
	if err != nil {
		return fmt.Errorf("delete client note: %w", err)
	}
	return nil
}

// ClientGroupRepo implementación de ClientGroupRepository sobre PostgreSQL.
type ClientGroupRepo struct {
	q Querier
}

// NewClientGroupRepository construye el adaptador de grupos de clientes.
func NewClientGroupRepository(q Querier) *ClientGroupRepo {
	return &ClientGroupRepo{q: q}
}

// Create persiste un grupo.
func (r *ClientGroupRepo) Create(group *entity.ClientGroup) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO client_groups (id, name, is_system) VALUES ($1, $2, $3)`,
		group.ID, group.Name, group.IsSystem,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client group: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo por ID, nil si no existe.
func (r *ClientGroupRepo) GetByID(id string) (*entity.ClientGroup, error) {
	var g entity.ClientGroup
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, is_system FROM client_groups WHERE id = $1`, id).Scan(&g.ID, &g.Name, &g.IsSystem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client group: %w", err)
	}
	return &g, nil
}

// List grupos (los de sistema primero, luego por nombre).
func (r *ClientGroupRepo) List() ([]*entity.ClientGroup, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, is_system FROM client_groups ORDER BY is_system DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list client groups: %w", err)
	}
	defer rows.Close()
	var list []*entity.ClientGroup
	for rows.Next() {
		var g entity.ClientGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.IsSystem); err != nil {
			return nil, fmt.Errorf("scan client group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Rename cambia el nombre del grupo.
func (r *ClientGroupRepo) Rename(id, name string) error {
	_, err := r.q.Exec(context.Background(), `UPDATE client_groups SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return fmt.Errorf("rename client group: %w", err)
	}
	return nil
}

// CountClients cuenta los miembros del grupo.
func (r *ClientGroupRepo) CountClients(id string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM clients WHERE group_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count group clients: %w", err)
	}
	return count, nil
}

// Delete elimina un grupo por ID.
func (r *ClientGroupRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM client_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client group: %w", err)
	}
	return nil
}
