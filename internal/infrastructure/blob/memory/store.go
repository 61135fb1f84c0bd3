// Package memory implementa blob.Store en memoria del proceso (desarrollo y tests).
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Cargas-api/internal/infrastructure/blob"
)

var _ blob.Store = (*Store)(nil)

type entry struct {
	info blob.Info
	data []byte
}

// Store blob.Store respaldado por un mapa.
type Store struct {
	mu   sync.RWMutex
	objs map[string]entry
}

// New devuelve un store vacío.
func New() *Store { return &Store{objs: make(map[string]entry)} }

// Driver identificador del driver.
func (s *Store) Driver() string { return blob.DriverMemory }

// Put guarda una copia del contenido.
func (s *Store) Put(_ context.Context, key string, r io.Reader, opts blob.PutOptions) (blob.Info, error) {
	if key == "" {
		return blob.Info{}, fmt.Errorf("blob: clave vacía")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return blob.Info{}, err
	}
	info := blob.Info{Key: key, Size: int64(len(b)), ContentType: opts.ContentType, LastModified: time.Now().UTC()}
	s.mu.Lock()
	s.objs[key] = entry{info: info, data: b}
	s.mu.Unlock()
	return info, nil
}

// Get devuelve una copia del contenido.
func (s *Store) Get(_ context.Context, key string) (blob.Info, io.ReadCloser, error) {
	s.mu.RLock()
	obj, ok := s.objs[key]
	s.mu.RUnlock()
	if !ok {
		return blob.Info{}, nil, blob.ErrNotFound
	}
	data := append([]byte(nil), obj.data...)
	return obj.info, io.NopCloser(bytes.NewReader(data)), nil
}

// List objetos bajo prefix ordenados por clave.
func (s *Store) List(_ context.Context, prefix string) ([]blob.Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]blob.Info, 0, len(s.objs))
	for k, v := range s.objs {
		if strings.HasPrefix(k, prefix) {
			out = append(out, v.info)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Delete elimina la clave; no falla si no existe.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.objs, key)
	s.mu.Unlock()
	return nil
}
