package dto

import "time"

// FileResponse archivo guardado en el almacenamiento de objetos.
type FileResponse struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size_bytes"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// FileListResponse listado de archivos bajo un prefijo.
type FileListResponse struct {
	Prefix string         `json:"prefix"`
	Items  []FileResponse `json:"items"`
}
