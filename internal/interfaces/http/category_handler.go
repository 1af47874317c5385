package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/categories-api/internal/application/category"
	"github.com/jhoicas/categories-api/internal/application/dto"
	"github.com/jhoicas/categories-api/internal/domain"
	"github.com/jhoicas/categories-api/pkg/logger"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	svc *category.Service
	log *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(svc *category.Service, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: log}
}

// List godoc
// @Summary      Listar categorías
// @Description  Sin parent_id devuelve las categorías raíz; con parent_id, las hijas directas de esa categoría. Orden: más antiguas primero.
// @Tags         categories
// @Produce      json
// @Param        parent_id  query  int  false  "ID de la categoría padre"
// @Success      200  {array}   dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	raw := c.Query("parent_id")
	if raw == "" {
		out, err := h.svc.GetRootCategories(c.UserContext())
		if err != nil {
			return h.internal(c, err)
		}
		return c.JSON(out)
	}

	parentID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parent_id debe ser un entero"})
	}
	out, err := h.svc.GetChildrenCategories(c.UserContext(), parentID)
	if err != nil {
		return h.internal(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "PARENT_NOT_FOUND",
			Message: fmt.Sprintf("categoría padre con id %d no encontrada", parentID),
		})
	}
	return c.JSON(out.Items)
}

// GetByID godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, rerr := pathID(c)
	if rerr != nil {
		return rerr.send(c)
	}
	out, err := h.svc.GetCategory(c.UserContext(), id)
	if err != nil {
		return h.internal(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: fmt.Sprintf("la categoría con id %d no existe", id)})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Nombre y padre opcional (null = raíz)"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if rerr := bindStrict(c.Body(), &in); rerr != nil {
		return rerr.send(c)
	}
	out, err := h.svc.CreateCategory(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return validationError(err.Error()).send(c)
		}
		return h.internal(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    "PARENT_NOT_FOUND",
			Message: fmt.Sprintf("categoría padre con id %d no encontrada", *in.ParentID),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría
// @Description  Solo se eliminan categorías sin hijas.
// @Tags         categories
// @Param        id   path  int  true  "ID de la categoría"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, rerr := pathID(c)
	if rerr != nil {
		return rerr.send(c)
	}
	res, err := h.svc.DeleteCategory(c.UserContext(), id)
	if err != nil {
		return h.internal(c, err)
	}
	switch res {
	case category.DeleteNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: fmt.Sprintf("la categoría con id %d no existe", id)})
	case category.DeleteHasChildren:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "HAS_CHILDREN", Message: fmt.Sprintf("la categoría con id %d tiene hijas y no puede eliminarse", id)})
	}
	h.log.Info().Str("request_id", GetRequestID(c)).Int64("category_id", id).Msg("categoría eliminada")
	return c.SendStatus(fiber.StatusNoContent)
}

func pathID(c *fiber.Ctx) (int64, *requestError) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, &requestError{status: fiber.StatusUnprocessableEntity, body: dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero"}}
	}
	return id, nil
}

// internal registra el fallo de persistencia y responde 500 sin filtrar detalles.
func (h *CategoryHandler) internal(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("request_id", GetRequestID(c)).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
