package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/supervisor-bit/HairBook-New/internal/application/dto"
	"github.com/supervisor-bit/HairBook-New/internal/domain"
	"github.com/supervisor-bit/HairBook-New/internal/domain/entity"
	"github.com/supervisor-bit/HairBook-New/internal/domain/repository"
)

// OrderUseCase órdenes de compra: alta, listado, avance pending -> ordered y
// borrado. La transición ordered -> delivered va por el coordinador (acredita
// stock), no por aquí.
type OrderUseCase struct {
	orders    repository.OrderRepository
	materials repository.MaterialRepository
	settings  repository.SettingsRepository
	pdfGen    OrderPDFGenerator
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orders repository.OrderRepository,
	materials repository.MaterialRepository,
	settings repository.SettingsRepository,
	pdfGen OrderPDFGenerator,
) *OrderUseCase {
	return &OrderUseCase{orders: orders, materials: materials, settings: settings, pdfGen: pdfGen}
}

// Create da de alta una orden pending con sus líneas.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	order := &entity.Order{
		ID:        uuid.New().String(),
		Status:    entity.OrderStatusPending,
		Note:      in.Note,
		CreatedAt: time.Now(),
	}
	for _, item := range in.Items {
		if item.MaterialID == "" || !item.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		material, err := uc.materials.GetByID(item.MaterialID)
		if err != nil {
			return nil, err
		}
		if material == nil {
			return nil, domain.ErrNotFound
		}
		order.Items = append(order.Items, entity.OrderItem{
			ID:         uuid.New().String(),
			OrderID:    order.ID,
			MaterialID: item.MaterialID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID devuelve la orden con líneas o ErrNotFound.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// List órdenes recientes primero.
func (uc *OrderUseCase) List() ([]dto.OrderResponse, error) {
	list, err := uc.orders.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// MarkOrdered avanza pending -> ordered y estampa orderedAt. Cualquier otro
// salto es ErrConflict (la máquina de estados es monótona).
func (uc *OrderUseCase) MarkOrdered(id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.OrderStatusPending {
		return nil, domain.ErrConflict
	}
	now := time.Now()
	if err := uc.orders.UpdateStatus(id, entity.OrderStatusPending, entity.OrderStatusOrdered, &now, nil); err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusOrdered
	order.OrderedAt = &now
	return toOrderResponse(order), nil
}

// Delete borra la orden (las entregadas ya dejaron su rastro en el libro).
func (uc *OrderUseCase) Delete(id string) error {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orders.Delete(id)
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	resp := &dto.OrderResponse{
		ID:          o.ID,
		Status:      o.Status,
		Note:        o.Note,
		Items:       make([]dto.OrderItemResponse, 0, len(o.Items)),
		CreatedAt:   o.CreatedAt,
		OrderedAt:   o.OrderedAt,
		DeliveredAt: o.DeliveredAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:         item.ID,
			MaterialID: item.MaterialID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}
	return resp
}
