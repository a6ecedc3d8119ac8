package ledger

import "github.com/supervisor-bit/HairBook-New/internal/domain/entity"

// causePolicy hace explícita la regla de cada causa: signo y si el débito
// exige saldo suficiente. La asimetría (ventas bloquean el sobregiro, el
// cierre de visita y los movimientos manuales no) es comportamiento observado
// del sistema original y aquí queda como dato, no como ramas dispersas.
type causePolicy struct {
	credit  bool // suma stock
	guarded bool // débito con pre-chequeo de saldo; el lote entero falla si no alcanza
}

var causePolicies = map[string]causePolicy{
	entity.MovementDelivery: {credit: true},
	entity.MovementPurchase: {credit: true},
	entity.MovementSale:     {guarded: true},
	entity.MovementUsage:    {guarded: true},
	entity.MovementVisit:    {}, // débito sin guard: una visita cerrada puede dejar saldo negativo
}
