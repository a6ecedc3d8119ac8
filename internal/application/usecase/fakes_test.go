package usecase_test

import (
	"github.com/shopspring/decimal"

	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

// Fakes en memoria, sin transacciones: los casos de uso de ficha no mutan
// saldos, así que basta con mapas.

// ── Materiales ───────────────────────────────────────────────────────────────

type memMaterialRepo struct {
	items map[string]*entity.Material
}

func newMemMaterialRepo() *memMaterialRepo {
	return &memMaterialRepo{items: make(map[string]*entity.Material)}
}

func (r *memMaterialRepo) Create(m *entity.Material) error {
	r.items[m.ID] = m
	return nil
}

func (r *memMaterialRepo) GetByID(id string) (*entity.Material, error) {
	m, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMaterialRepo) GetForUpdate(id string) (*entity.Material, error) { return r.GetByID(id) }

func (r *memMaterialRepo) List(groupID string) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.items {
		if groupID == "" || m.GroupID == groupID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMaterialRepo) ListBelowMinStock() ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.items {
		if m.MinStock.Sign() > 0 && m.StockQuantity.LessThanOrEqual(m.MinStock) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memMaterialRepo) Update(m *entity.Material) error {
	r.items[m.ID] = m
	return nil
}

func (r *memMaterialRepo) UpdateStock(id string, quantity decimal.Decimal) error {
	r.items[id].StockQuantity = quantity
	return nil
}

func (r *memMaterialRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type memMaterialGroupRepo struct {
	items map[string]*entity.MaterialGroup
}

func newMemMaterialGroupRepo() *memMaterialGroupRepo {
	return &memMaterialGroupRepo{items: make(map[string]*entity.MaterialGroup)}
}

func (r *memMaterialGroupRepo) Create(g *entity.MaterialGroup) error {
	r.items[g.ID] = g
	return nil
}

func (r *memMaterialGroupRepo) GetByID(id string) (*entity.MaterialGroup, error) {
	g, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return g, nil
}

func (r *memMaterialGroupRepo) List() ([]*entity.MaterialGroup, error) {
	var out []*entity.MaterialGroup
	for _, g := range r.items {
		out = append(out, g)
	}
	return out, nil
}

func (r *memMaterialGroupRepo) MaxOrder() (int, error) {
	max := 0
	for _, g := range r.items {
		if g.Order > max {
			max = g.Order
		}
	}
	return max, nil
}

func (r *memMaterialGroupRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// ── Libro de movimientos (solo lo que usan los casos de uso de ficha) ────────

type memMovementRepo struct {
	movements []*entity.MaterialMovement
}

func (r *memMovementRepo) Create(m *entity.MaterialMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *memMovementRepo) ListByMaterial(materialID, typeFilter string, limit int) ([]*entity.MaterialMovement, error) {
	var out []*entity.MaterialMovement
	for _, m := range r.movements {
		if m.MaterialID != materialID {
			continue
		}
		if typeFilter != "" && m.Type != typeFilter {
			continue
		}
		out = append(out, m)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *memMovementRepo) ListByTypes(types []string, clientID string) ([]*entity.MaterialMovement, error) {
	var out []*entity.MaterialMovement
	for _, m := range r.movements {
		for _, t := range types {
			if m.Type != t {
				continue
			}
			if clientID != "" && (m.ClientID == nil || *m.ClientID != clientID) {
				continue
			}
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) CountByMaterial(materialID string) (int, error) {
	n := 0
	for _, m := range r.movements {
		if m.MaterialID == materialID {
			n++
		}
	}
	return n, nil
}

func (r *memMovementRepo) SumByMaterial(materialID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range r.movements {
		if m.MaterialID == materialID {
			sum = sum.Add(m.Quantity)
		}
	}
	return sum, nil
}

// ── Clientes ─────────────────────────────────────────────────────────────────

type memClientRepo struct {
	items map[string]*entity.Client
	notes map[string]*entity.ClientNote
}

func newMemClientRepo() *memClientRepo {
	return &memClientRepo{
		items: make(map[string]*entity.Client),
		notes: make(map[string]*entity.ClientNote),
	}
}

func (r *memClientRepo) Create(c *entity.Client) error {
	r.items[c.ID] = c
	return nil
}

func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memClientRepo) List(groupID string) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.items {
		if groupID == "" || (c.GroupID != nil && *c.GroupID == groupID) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memClientRepo) Update(c *entity.Client) error {
	r.items[c.ID] = c
	return nil
}

func (r *memClientRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

func (r *memClientRepo) AddNote(n *entity.ClientNote) error {
	r.notes[n.ID] = n
	return nil
}

func (r *memClientRepo) ListNotes(clientID string) ([]*entity.ClientNote, error) {
	var out []*entity.ClientNote
	for _, n := range r.notes {
		if n.ClientID == clientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *memClientRepo) DeleteNote(noteID string) error {
	delete(r.notes, noteID)
	return nil
}

type memClientGroupRepo struct {
	items   map[string]*entity.ClientGroup
	members map[string]int // groupID -> clientes
}

func newMemClientGroupRepo() *memClientGroupRepo {
	return &memClientGroupRepo{
		items:   make(map[string]*entity.ClientGroup),
		members: make(map[string]int),
	}
}

func (r *memClientGroupRepo) Create(g *entity.ClientGroup) error {
	r.items[g.ID] = g
	return nil
}

func (r *memClientGroupRepo) GetByID(id string) (*entity.ClientGroup, error) {
	g, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return g, nil
}

func (r *memClientGroupRepo) List() ([]*entity.ClientGroup, error) {
	var out []*entity.ClientGroup
	for _, g := range r.items {
		out = append(out, g)
	}
	return out, nil
}

func (r *memClientGroupRepo) Rename(id, name string) error {
	r.items[id].Name = name
	return nil
}

func (r *memClientGroupRepo) CountClients(id string) (int, error) {
	return r.members[id], nil
}

func (r *memClientGroupRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// ── Productos a casa ─────────────────────────────────────────────────────────

type memHomeProductRepo struct {
	items []*entity.HomeProduct
}

func (r *memHomeProductRepo) Create(p *entity.HomeProduct) error {
	r.items = append(r.items, p)
	return nil
}

func (r *memHomeProductRepo) GetByID(id string) (*entity.HomeProduct, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memHomeProductRepo) ListByClient(clientID string) ([]*entity.HomeProduct, error) {
	var out []*entity.HomeProduct
	for _, p := range r.items {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memHomeProductRepo) DeleteByPurchase(purchaseID string) error {
	kept := r.items[:0]
	for _, p := range r.items {
		if p.PurchaseID != purchaseID {
			kept = append(kept, p)
		}
	}
	r.items = kept
	return nil
}

func (r *memHomeProductRepo) Delete(id string) error {
	kept := r.items[:0]
	for _, p := range r.items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.items = kept
	return nil
}

var (
	_ repository.MaterialRepository      = (*memMaterialRepo)(nil)
	_ repository.MaterialGroupRepository = (*memMaterialGroupRepo)(nil)
	_ repository.MovementRepository      = (*memMovementRepo)(nil)
	_ repository.ClientRepository        = (*memClientRepo)(nil)
	_ repository.ClientGroupRepository   = (*memClientGroupRepo)(nil)
	_ repository.HomeProductRepository   = (*memHomeProductRepo)(nil)
)
