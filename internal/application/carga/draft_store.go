package carga

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Cargas-api/internal/domain"
	"github.com/jhoicas/Cargas-api/internal/domain/entity"
)

type draftEntry struct {
	mu   sync.Mutex
	flow *LoadFlow
}

// DraftStore guarda borradores de carga en memoria. Cada borrador tiene su propio lock,
// así el envío (que hace I/O) de un borrador no bloquea a los demás.
type DraftStore struct {
	mu        sync.Mutex
	drafts    map[string]*draftEntry
	submitter Submitter
	ttl       time.Duration
	now       func() time.Time
}

// NewDraftStore construye el store. Los borradores sin actividad por más de ttl se descartan.
func NewDraftStore(submitter Submitter, ttl time.Duration) *DraftStore {
	return &DraftStore{
		drafts:    make(map[string]*draftEntry),
		submitter: submitter,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Create abre un borrador nuevo para el usuario (puede ser nil). Con usuario, solo ese usuario puede
// consultarlo o modificarlo.
func (s *DraftStore) Create(user *entity.UserSnapshot) LoadFlow {
	now := s.now()
	flow := NewLoadFlow(uuid.New().String(), user, now)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked(now)
	s.drafts[flow.ID] = &draftEntry{flow: flow}
	return snapshot(flow)
}

// Get devuelve una copia del borrador. ErrNotFound si no existe o expiró; ErrForbidden si
// userID no es quien lo abrió.
func (s *DraftStore) Get(id, userID string) (LoadFlow, error) {
	e, err := s.acquire(id, userID)
	if err != nil {
		return LoadFlow{}, err
	}
	defer e.mu.Unlock()
	return snapshot(e.flow), nil
}

// Apply ejecuta un comando sobre el borrador y devuelve su nuevo estado.
func (s *DraftStore) Apply(ctx context.Context, id, userID string, cmd FlowCommand) (LoadFlow, error) {
	e, err := s.acquire(id, userID)
	if err != nil {
		return LoadFlow{}, err
	}
	defer e.mu.Unlock()
	if err := e.flow.Apply(ctx, cmd, s.submitter, s.now()); err != nil {
		return snapshot(e.flow), err
	}
	return snapshot(e.flow), nil
}

// Delete descarta el borrador.
func (s *DraftStore) Delete(id, userID string) error {
	e, err := s.acquire(id, userID)
	if err != nil {
		return err
	}
	e.mu.Unlock()
	s.drop(id, e)
	return nil
}

// acquire devuelve la entrada con e.mu tomado.
func (s *DraftStore) acquire(id, userID string) (*draftEntry, error) {
	s.mu.Lock()
	e, ok := s.drafts[id]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}

	e.mu.Lock()
	if s.expired(e.flow, s.now()) {
		e.mu.Unlock()
		s.drop(id, e)
		return nil, domain.ErrNotFound
	}
	if owner := e.flow.User; owner != nil && owner.ID != userID {
		e.mu.Unlock()
		return nil, domain.ErrForbidden
	}
	return e, nil
}

// drop quita id solo si sigue apuntando a e.
func (s *DraftStore) drop(id string, e *draftEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drafts[id] == e {
		delete(s.drafts, id)
	}
}

func (s *DraftStore) expired(f *LoadFlow, now time.Time) bool {
	return s.ttl > 0 && now.Sub(f.UpdatedAt) > s.ttl
}

// purgeLocked elimina borradores vencidos; requiere s.mu tomado.
func (s *DraftStore) purgeLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, e := range s.drafts {
		if !e.mu.TryLock() {
			continue // en uso
		}
		expired := s.expired(e.flow, now)
		e.mu.Unlock()
		if expired {
			delete(s.drafts, id)
		}
	}
}

func snapshot(f *LoadFlow) LoadFlow {
	cp := *f
	cp.Items = append([]ItemInput(nil), f.Items...)
	return cp
}
