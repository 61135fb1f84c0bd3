package carga

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/Cargas-api/internal/domain"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

// FlowState estado del borrador de carga.
type FlowState string

const (
	StateSelectVehicle     FlowState = "seleccion_vehiculo"
	StateSelectProducts    FlowState = "seleccion_productos"
	StateConfirm           FlowState = "confirmacion"
	StateSaved             FlowState = "guardada"
	StateSavedWithWarnings FlowState = "guardada_con_advertencias"
	StateFailed            FlowState = "fallida"
)

// FlowEvent evento que dispara una transición.
type FlowEvent string

const (
	EventSelectVehicle FlowEvent = "seleccionar_vehiculo"
	EventAddProduct    FlowEvent = "agregar_producto"
	EventRemoveProduct FlowEvent = "quitar_producto"
	EventConfirm       FlowEvent = "confirmar"
	EventBack          FlowEvent = "volver"
	EventSubmit        FlowEvent = "enviar"
	EventRetry         FlowEvent = "reintentar"
)

// transitions tabla de transiciones. El destino de EventSubmit es nominal:
// el estado final depende del resultado del registro (ver submitState).
var transitions = map[FlowState]map[FlowEvent]FlowState{
	StateSelectVehicle: {
		EventSelectVehicle: StateSelectProducts,
	},
	StateSelectProducts: {
		EventSelectVehicle: StateSelectProducts,
		EventAddProduct:    StateSelectProducts,
		EventRemoveProduct: StateSelectProducts,
		EventConfirm:       StateConfirm,
		EventBack:          StateSelectVehicle,
	},
	StateConfirm: {
		EventBack:   StateSelectProducts,
		EventSubmit: StateSaved,
	},
	StateFailed: {
		EventRetry: StateConfirm,
		EventBack:  StateSelectProducts,
	},
}

// NextState devuelve el estado destino para (from, ev) y si la transición existe.
func NextState(from FlowState, ev FlowEvent) (FlowState, bool) {
	to, ok := transitions[from][ev]
	return to, ok
}

// AllowedEvents eventos válidos desde state, en orden alfabético.
func AllowedEvents(state FlowState) []FlowEvent {
	out := make([]FlowEvent, 0, len(transitions[state]))
	for ev := range transitions[state] {
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Submitter registra la carga armada por el borrador.
type Submitter interface {
	RegisterLoad(ctx context.Context, in RegisterLoadInput) (*LoadResult, error)
}

// FlowCommand evento más sus datos.
type FlowCommand struct {
	Event     FlowEvent
	VehicleID string
	ProductID string
	Quantity  int64
	Export    string
}

// LoadFlow borrador de carga conducido por la tabla de transiciones,
// independiente de cualquier capa de presentación.
type LoadFlow struct {
	ID        string
	State     FlowState
	VehicleID string
	Items     []ItemInput
	User      *entity.UserSnapshot
	Result    *LoadResult
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLoadFlow crea un borrador en StateSelectVehicle.
func NewLoadFlow(id string, user *entity.UserSnapshot, now time.Time) *LoadFlow {
	return &LoadFlow{ID: id, State: StateSelectVehicle, User: user, CreatedAt: now, UpdatedAt: now}
}

// Apply valida y ejecuta un comando. Si la transición no existe devuelve ErrInvalidTransition
// y el borrador no cambia. Los errores de datos del comando tampoco cambian el estado.
// En EventSubmit el error del registro no se devuelve: queda en LastError con State = StateFailed.
func (f *LoadFlow) Apply(ctx context.Context, cmd FlowCommand, submitter Submitter, now time.Time) error {
	next, ok := NextState(f.State, cmd.Event)
	if !ok {
		return domain.ErrInvalidTransition
	}

	switch cmd.Event {
	case EventSelectVehicle:
		id := strings.TrimSpace(cmd.VehicleID)
		if id == "" {
			return domain.ErrVehicleRequired
		}
		f.VehicleID = id
	case EventAddProduct:
		id := strings.TrimSpace(cmd.ProductID)
		if id == "" || cmd.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		f.setItem(id, cmd.Quantity)
	case EventRemoveProduct:
		f.removeItem(strings.TrimSpace(cmd.ProductID))
	case EventConfirm:
		if len(f.Items) == 0 {
			return domain.ErrNoItems
		}
	case EventSubmit:
		res, err := submitter.RegisterLoad(ctx, RegisterLoadInput{
			VehicleID: f.VehicleID,
			User:      f.User,
			Items:     append([]ItemInput(nil), f.Items...),
			Export:    cmd.Export,
		})
		next = submitState(res, err)
		f.Result = res
		f.LastError = ""
		if err != nil {
			f.LastError = err.Error()
		}
	case EventRetry, EventBack:
		f.LastError = ""
	}

	f.State = next
	f.UpdatedAt = now
	return nil
}

// Terminal indica si el borrador ya no acepta eventos.
func (f *LoadFlow) Terminal() bool {
	return len(transitions[f.State]) == 0
}

func submitState(res *LoadResult, err error) FlowState {
	switch {
	case err != nil:
		return StateFailed
	case res.HasWarnings():
		return StateSavedWithWarnings
	default:
		return StateSaved
	}
}

// setItem fija la cantidad del producto; un producto aparece una sola vez en el borrador.
func (f *LoadFlow) setItem(productID string, qty int64) {
	for i := range f.Items {
		if f.Items[i].ProductID == productID {
			f.Items[i].Quantity = qty
			return
		}
	}
	f.Items = append(f.Items, ItemInput{ProductID: productID, Quantity: qty})
}

func (f *LoadFlow) removeItem(productID string) {
	for i := range f.Items {
		if f.Items[i].ProductID == productID {
			f.Items = append(f.Items[:i], f.Items[i+1:]...)
			return
		}
	}
}

// IsValidationError indica si err corresponde a datos inválidos de entrada (no a fallas de infraestructura).
func IsValidationError(err error) bool {
	return errors.Is(err, domain.ErrVehicleRequired) ||
		errors.Is(err, domain.ErrNoItems) ||
		errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrNotFound)
}
