package ledger_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el coordinador. El fakeTxRunner imita el todo-o-nada
// de una transacción real: el callback trabaja sobre una copia del estado y
// solo se "commitea" si no hay error.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	materials    map[string]*entity.Material
	movements    []*entity.MaterialMovement
	homeProducts []*entity.HomeProduct
	orders       map[string]*entity.Order
	visits       map[string]*entity.Visit
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		materials: make(map[string]*entity.Material),
		orders:    make(map[string]*entity.Order),
		visits:    make(map[string]*entity.Visit),
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	for id, m := range s.materials {
		cp := *m
		c.materials[id] = &cp
	}
	for id, o := range s.orders {
		cp := *o
		c.orders[id] = &cp
	}
	for id, v := range s.visits {
		cp := *v
		c.visits[id] = &cp
	}
	c.movements = append([]*entity.MaterialMovement(nil), s.movements...)
	c.homeProducts = append([]*entity.HomeProduct(nil), s.homeProducts...)
	return c
}

func (s *fakeStore) commit(tx *fakeStore) {
	s.materials = tx.materials
	s.movements = tx.movements
	s.homeProducts = tx.homeProducts
	s.orders = tx.orders
	s.visits = tx.visits
}

func (s *fakeStore) stock(materialID string) decimal.Decimal {
	return s.materials[materialID].StockQuantity
}

// seedMaterial registra un material con saldo inicial y devuelve su ID.
func (s *fakeStore) seedMaterial(id, name, unit string, packageSize, stock float64) {
	s.materials[id] = &entity.Material{
		ID:            id,
		Name:          name,
		Unit:          unit,
		PackageSize:   decimal.NewFromFloat(packageSize),
		StockQuantity: decimal.NewFromFloat(stock),
	}
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	repository.MaterialRepository, repository.MovementRepository) error,
) error {
	tx := r.store.clone()
	if err := fn(&fakeMaterialRepo{tx}, &fakeMovementRepo{tx}); err != nil {
		return err
	}
	r.store.commit(tx)
	return nil
}

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(
	repository.MaterialRepository, repository.MovementRepository, repository.HomeProductRepository) error,
) error {
	tx := r.store.clone()
	if err := fn(&fakeMaterialRepo{tx}, &fakeMovementRepo{tx}, &fakeHomeProductRepo{tx}); err != nil {
		return err
	}
	r.store.commit(tx)
	return nil
}

func (r *fakeTxRunner) RunOrder(_ context.Context, fn func(
	repository.MaterialRepository, repository.MovementRepository, repository.OrderRepository) error,
) error {
	tx := r.store.clone()
	if err := fn(&fakeMaterialRepo{tx}, &fakeMovementRepo{tx}, &fakeOrderRepo{tx}); err != nil {
		return err
	}
	r.store.commit(tx)
	return nil
}

func (r *fakeTxRunner) RunVisit(_ context.Context, fn func(
	repository.MaterialRepository, repository.MovementRepository, repository.VisitRepository) error,
) error {
	tx := r.store.clone()
	if err := fn(&fakeMaterialRepo{tx}, &fakeMovementRepo{tx}, &fakeVisitRepo{tx}); err != nil {
		return err
	}
	r.store.commit(tx)
	return nil
}

// colanteTxRunner ejecuta una mutación sobre el almacén justo antes de abrir
// la transacción, como si otra petición hubiera commiteado entre la lectura
// previa del coordinador y su lote.
type colanteTxRunner struct {
	*fakeTxRunner
	cuela func(*fakeStore)
}

func (r *colanteTxRunner) RunOrder(ctx context.Context, fn func(
	repository.MaterialRepository, repository.MovementRepository, repository.OrderRepository) error,
) error {
	r.cuela(r.store)
	return r.fakeTxRunner.RunOrder(ctx, fn)
}

func (r *colanteTxRunner) RunVisit(ctx context.Context, fn func(
	repository.MaterialRepository, repository.MovementRepository, repository.VisitRepository) error,
) error {
	r.cuela(r.store)
	return r.fakeTxRunner.RunVisit(ctx, fn)
}

// ── Materiales ───────────────────────────────────────────────────────────────

type fakeMaterialRepo struct{ s *fakeStore }

func (r *fakeMaterialRepo) Create(m *entity.Material) error {
	r.s.materials[m.ID] = m
	return nil
}

func (r *fakeMaterialRepo) GetByID(id string) (*entity.Material, error) {
	m, ok := r.s.materials[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMaterialRepo) GetForUpdate(id string) (*entity.Material, error) {
	return r.GetByID(id)
}

func (r *fakeMaterialRepo) List(groupID string) ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.s.materials {
		if groupID == "" || m.GroupID == groupID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMaterialRepo) ListBelowMinStock() ([]*entity.Material, error) {
	var out []*entity.Material
	for _, m := range r.s.materials {
		if m.MinStock.Sign() > 0 && m.StockQuantity.LessThanOrEqual(m.MinStock) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMaterialRepo) Update(m *entity.Material) error {
	r.s.materials[m.ID] = m
	return nil
}

func (r *fakeMaterialRepo) UpdateStock(id string, quantity decimal.Decimal) error {
	r.s.materials[id].StockQuantity = quantity
	return nil
}

func (r *fakeMaterialRepo) Delete(id string) error {
	delete(r.s.materials, id)
	return nil
}

// ── Libro de movimientos ─────────────────────────────────────────────────────

type fakeMovementRepo struct{ s *fakeStore }

func (r *fakeMovementRepo) Create(m *entity.MaterialMovement) error {
	r.s.movements = append(r.s.movements, m)
	return nil
}

func (r *fakeMovementRepo) ListByMaterial(materialID, typeFilter string, limit int) ([]*entity.MaterialMovement, error) {
	var out []*entity.MaterialMovement
	for _, m := range r.s.movements {
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

func (r *fakeMovementRepo) ListByTypes(types []string, clientID string) ([]*entity.MaterialMovement, error) {
	var out []*entity.MaterialMovement
	for _, m := range r.s.movements {
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

func (r *fakeMovementRepo) CountByMaterial(materialID string) (int, error) {
	n := 0
	for _, m := range r.s.movements {
		if m.MaterialID == materialID {
			n++
		}
	}
	return n, nil
}

func (r *fakeMovementRepo) SumByMaterial(materialID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range r.s.movements {
		if m.MaterialID == materialID {
			sum = sum.Add(m.Quantity)
		}
	}
	return sum, nil
}

// ── Productos a casa ─────────────────────────────────────────────────────────

type fakeHomeProductRepo struct{ s *fakeStore }

func (r *fakeHomeProductRepo) Create(p *entity.HomeProduct) error {
	r.s.homeProducts = append(r.s.homeProducts, p)
	return nil
}

func (r *fakeHomeProductRepo) GetByID(id string) (*entity.HomeProduct, error) {
	for _, p := range r.s.homeProducts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeHomeProductRepo) ListByClient(clientID string) ([]*entity.HomeProduct, error) {
	var out []*entity.HomeProduct
	for _, p := range r.s.homeProducts {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeHomeProductRepo) DeleteByPurchase(purchaseID string) error {
	kept := r.s.homeProducts[:0]
	for _, p := range r.s.homeProducts {
		if p.PurchaseID != purchaseID {
			kept = append(kept, p)
		}
	}
	r.s.homeProducts = kept
	return nil
}

func (r *fakeHomeProductRepo) Delete(id string) error {
	kept := r.s.homeProducts[:0]
	for _, p := range r.s.homeProducts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.s.homeProducts = kept
	return nil
}

// ── Órdenes ──────────────────────────────────────────────────────────────────

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.s.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) List() ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.s.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, from, to string, orderedAt, deliveredAt *time.Time) error {
	o, ok := r.s.orders[id]
	if !ok || o.Status != from {
		return domain.ErrConflict
	}
	o.Status = to
	if orderedAt != nil {
		o.OrderedAt = orderedAt
	}
	if deliveredAt != nil {
		o.DeliveredAt = deliveredAt
	}
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	delete(r.s.orders, id)
	return nil
}

// ── Visitas ──────────────────────────────────────────────────────────────────

type fakeVisitRepo struct{ s *fakeStore }

func (r *fakeVisitRepo) Create(v *entity.Visit) error {
	r.s.visits[v.ID] = v
	return nil
}

func (r *fakeVisitRepo) GetByID(id string) (*entity.Visit, error) {
	v, ok := r.s.visits[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVisitRepo) ListByClient(clientID string) ([]*entity.Visit, error) {
	var out []*entity.Visit
	for _, v := range r.s.visits {
		if v.ClientID == clientID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *fakeVisitRepo) Update(id string, note string, totalPrice *decimal.Decimal) error {
	v := r.s.visits[id]
	v.Note = note
	v.TotalPrice = totalPrice
	return nil
}

func (r *fakeVisitRepo) Close(id string, note string, totalPrice *decimal.Decimal, closedAt time.Time) error {
	v, ok := r.s.visits[id]
	if !ok || v.Status != entity.VisitStatusSaved {
		return domain.ErrConflict
	}
	v.Status = entity.VisitStatusClosed
	v.Note = note
	v.TotalPrice = totalPrice
	v.ClosedAt = &closedAt
	return nil
}

func (r *fakeVisitRepo) Delete(id string) error {
	delete(r.s.visits, id)
	return nil
}

func (r *fakeVisitRepo) AddService(vs *entity.VisitService) error {
	v := r.s.visits[vs.VisitID]
	v.Services = append(v.Services, *vs)
	return nil
}

func (r *fakeVisitRepo) RemoveService(visitID, visitServiceID string) error {
	v := r.s.visits[visitID]
	kept := v.Services[:0]
	for _, s := range v.Services {
		if s.ID != visitServiceID {
			kept = append(kept, s)
		}
	}
	v.Services = kept
	return nil
}

func (r *fakeVisitRepo) MaxServiceOrder(visitID string) (int, error) {
	max := 0
	for _, s := range r.s.visits[visitID].Services {
		if s.Order > max {
			max = s.Order
		}
	}
	return max, nil
}

func (r *fakeVisitRepo) AddMaterial(vm *entity.VisitMaterial) error {
	for _, v := range r.s.visits {
		for i := range v.Services {
			if v.Services[i].ID == vm.VisitServiceID {
				v.Services[i].Materials = append(v.Services[i].Materials, *vm)
			}
		}
	}
	return nil
}

func (r *fakeVisitRepo) UpdateMaterial(vm *entity.VisitMaterial) error {
	for _, v := range r.s.visits {
		for i := range v.Services {
			if v.Services[i].ID != vm.VisitServiceID {
				continue
			}
			for j := range v.Services[i].Materials {
				if v.Services[i].Materials[j].MaterialID == vm.MaterialID {
					v.Services[i].Materials[j].Quantity = vm.Quantity
					v.Services[i].Materials[j].Unit = vm.Unit
				}
			}
		}
	}
	return nil
}

func (r *fakeVisitRepo) RemoveMaterial(visitServiceID, materialID string) error {
	for _, v := range r.s.visits {
		for i := range v.Services {
			if v.Services[i].ID != visitServiceID {
				continue
			}
			kept := v.Services[i].Materials[:0]
			for _, m := range v.Services[i].Materials {
				if m.MaterialID != materialID {
					kept = append(kept, m)
				}
			}
			v.Services[i].Materials = kept
		}
	}
	return nil
}

// interfaces completas, que el compilador lo vigile
var (
	_ repository.MaterialRepository    = (*fakeMaterialRepo)(nil)
	_ repository.MovementRepository    = (*fakeMovementRepo)(nil)
	_ repository.HomeProductRepository = (*fakeHomeProductRepo)(nil)
	_ repository.OrderRepository       = (*fakeOrderRepo)(nil)
	_ repository.VisitRepository       = (*fakeVisitRepo)(nil)
)
