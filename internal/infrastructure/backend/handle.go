// Package backend resuelve de forma asíncrona los clientes externos (pool de Postgres,
// almacenamiento de objetos) y permite esperarlos con un límite de tiempo.
package backend

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Cargas-api/internal/domain"
)

// Handle futuro de un cliente de tipo T. Se resuelve una sola vez.
type Handle[T any] struct {
	name string
	once sync.Once
	done chan struct{}
	val  T
	err  error
}

// New crea un handle pendiente.
func New[T any](name string) *Handle[T] {
	return &Handle[T]{name: name, done: make(chan struct{})}
}

// Start crea el handle y ejecuta init en segundo plano.
func Start[T any](ctx context.Context, name string, init func(context.Context) (T, error)) *Handle[T] {
	h := New[T](name)
	go func() {
		v, err := init(ctx)
		h.Resolve(v, err)
	}()
	return h
}

// Resolve fija el resultado. Llamadas posteriores se ignoran.
func (h *Handle[T]) Resolve(v T, err error) {
	h.once.Do(func() {
		h.val, h.err = v, err
		close(h.done)
	})
}

func (h *Handle[T]) Name() string { return h.name }

// Ready indica si el handle ya se resolvió (con o sin error).
func (h *Handle[T]) Ready() bool {
	select {
	case <-h.done:
		return true
	default:
	}
	return false
}

// Await espera el resultado como máximo timeout; con timeout <= 0 espera solo a ctx. Si se
// vence el plazo, se cancela ctx o la inicialización falló, el error envuelve
// domain.ErrBackendUnavailable.
func (h *Handle[T]) Await(ctx context.Context, timeout time.Duration) (T, error) {
	if h.Ready() {
		return h.result()
	}

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-h.done:
		return h.result()
	case <-expired:
		var zero T
		return zero, fmt.Errorf("backend %s: %w: sin respuesta en %s", h.name, domain.ErrBackendUnavailable, timeout)
	case <-ctx.Done():
		var zero T
		return zero, fmt.Errorf("backend %s: %w: %w", h.name, domain.ErrBackendUnavailable, ctx.Err())
	}
}

func (h *Handle[T]) result() (T, error) {
	if h.err != nil {
		var zero T
		return zero, fmt.Errorf("backend %s: %w: %w", h.name, domain.ErrBackendUnavailable, h.err)
	}
	return h.val, nil
}
