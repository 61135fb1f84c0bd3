package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cargas-api/internal/application/dto"
	"github.com/jhoicas/Cargas-api/internal/infrastructure/blob"
	"github.com/jhoicas/Cargas-api/internal/infrastructure/export"
)

// FileHandler listado y descarga de archivos exportados.
type FileHandler struct {
	store blob.Store
}

func NewFileHandler(store blob.Store) *FileHandler {
	return &FileHandler{store: store}
}

// List godoc
// @Summary      Listar archivos guardados
// @Tags         files
// @Security     Bearer
// @Produce      json
// @Param        prefix  query  string  false  "Prefijo"  default(cargas/)
// @Success      200     {object}  dto.FileListResponse
// @Router       /api/files [get]
func (h *FileHandler) List(c *fiber.Ctx) error {
	prefix := c.Query("prefix", export.KeyPrefix)
	infos, err := h.store.List(c.UserContext(), prefix)
	if err != nil {
		return writeError(c, err)
	}
	out := dto.FileListResponse{Prefix: prefix, Items: make([]dto.FileResponse, 0, len(infos))}
	for _, i := range infos {
		out.Items = append(out.Items, dto.FileResponse{
			Key:          i.Key,
			Size:         i.Size,
			ContentType:  i.ContentType,
			LastModified: i.LastModified,
		})
	}
	return c.JSON(out)
}

// Content godoc
// @Summary      Descargar archivo guardado
// @Tags         files
// @Security     Bearer
// @Produce      octet-stream
// @Param        key  query  string  true  "Clave del archivo"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/files/content [get]
func (h *FileHandler) Content(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return badRequest(c, "VALIDATION", "key es requerido")
	}
	info, rc, err := h.store.Get(c.UserContext(), key)
	if errors.Is(err, blob.ErrNotFound) {
		return notFound(c, "archivo no encontrado")
	}
	if err != nil {
		return writeError(c, err)
	}
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		return writeError(c, err)
	}
	if info.ContentType != "" {
		c.Set(fiber.HeaderContentType, info.ContentType)
	}
	return c.Send(body)
}
