// Package blob define el puerto de almacenamiento de objetos donde se guardan las exportaciones de cargas.
package blob

import (
	"context"
	"errors"
	"io"
	"time"
)

// Drivers soportados.
const (
	DriverMemory = "memory"
	DriverS3     = "s3"
)

// ErrNotFound la clave no existe.
var ErrNotFound = errors.New("blob no encontrado")

// Info metadatos de un objeto.
type Info struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// PutOptions opciones de escritura.
type PutOptions struct {
	ContentType string
	Metadata    map[string]string
}

// Store almacenamiento de objetos con claves planas.
type Store interface {
	Driver() string
	// Put escribe (o reemplaza) el objeto.
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error)
	// Get devuelve ErrNotFound si la clave no existe. El llamador cierra el reader.
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	// List objetos bajo prefix ordenados por clave.
	List(ctx context.Context, prefix string) ([]Info, error)
	Delete(ctx context.Context, key string) error
}
