package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/serviapp/catalog-service/internal/categoria"
	"github.com/serviapp/catalog-service/internal/categoria/dto"
	"github.com/serviapp/catalog-service/internal/httperr"
	"github.com/serviapp/catalog-service/pkg/logger"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

type CategoriaHandler struct {
	uc     categoria.UseCase
	logger *logger.Logger
}

func NewCategoriaHandler(uc categoria.UseCase, log *logger.Logger) *CategoriaHandler {
	return &CategoriaHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoriaHandler) Routes(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/tree", h.Tree)
	g.GET("/count", h.Count)
	g.GET("/:id", h.Get)
	g.GET("/:id/subcategorias", h.Subcategorias)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id/toggle-activo", h.ToggleActivo)
	g.DELETE("/:id", h.Delete)
}

func (h *CategoriaHandler) List(c echo.Context) error {
	filters := &dto.CategoriaFilters{
		Skip:        cast.ToInt(c.QueryParam("skip")),
		Limit:       cast.ToInt(c.QueryParam("limit")),
		SoloActivos: cast.ToBool(c.QueryParam("solo_activos")),
		SoloRaiz:    cast.ToBool(c.QueryParam("solo_raiz")),
	}
	if filters.Skip < 0 {
		filters.Skip = 0
	}
	if filters.Limit <= 0 {
		filters.Limit = defaultLimit
	}
	if filters.Limit > maxLimit {
		filters.Limit = maxLimit
	}

	categorias, err := h.uc.List(c.Request().Context(), filters)
	if err != nil {
		h.logger.Error("failed to list categorias", zap.Error(err))
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewCategoriaResponseList(categorias))
}

func (h *CategoriaHandler) Tree(c echo.Context) error {
	soloActivos := true
	if v := c.QueryParam("solo_activos"); v != "" {
		soloActivos = cast.ToBool(v)
	}

	roots, err := h.uc.GetTree(c.Request().Context(), soloActivos)
	if err != nil {
		h.logger.Error("failed to build categoria tree", zap.Error(err))
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewCategoriaTreeList(roots))
}

func (h *CategoriaHandler) Count(c echo.Context) error {
	total, err := h.uc.Count(c.Request().Context(), cast.ToBool(c.QueryParam("solo_activos")))
	if err != nil {
		h.logger.Error("failed to count categorias", zap.Error(err))
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"total": total})
}

func (h *CategoriaHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httperr.Detail(c, http.StatusBadRequest, "ID inválido")
	}

	cat, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("failed to get categoria", zap.Int64("id", id), zap.Error(err))
		return httperr.JSON(c, err)
	}
	if cat == nil {
		return notFound(c, id)
	}
	return c.JSON(http.StatusOK, dto.NewCategoriaResponse(cat))
}

func (h *CategoriaHandler) Subcategorias(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httperr.Detail(c, http.StatusBadRequest, "ID inválido")
	}

	ctx := c.Request().Context()
	cat, err := h.uc.GetByID(ctx, id)
	if err != nil {
		h.logger.Error("failed to get categoria", zap.Int64("id", id), zap.Error(err))
		return httperr.JSON(c, err)
	}
	if cat == nil {
		return notFound(c, id)
	}

	subcategorias, err := h.uc.GetSubcategorias(ctx, id)
	if err != nil {
		h.logger.Error("failed to get subcategorias", zap.Int64("id", id), zap.Error(err))
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewCategoriaResponseList(subcategorias))
}

func (h *CategoriaHandler) Create(c echo.Context) error {
	input := new(dto.CreateCategoriaInput)
	if err := c.Bind(input); err != nil {
		return httperr.Detail(c, http.StatusBadRequest, "cuerpo de petición inválido")
	}
	if err := c.Validate(input); err != nil {
		return httperr.Detail(c, http.StatusBadRequest, err.Error())
	}

	cat, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		h.logger.Warn("failed to create categoria", zap.String("nombre", input.Nombre), zap.Error(err))
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto.NewCategoriaResponse(cat))
}

func (h *CategoriaHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httperr.Detail(c, http.StatusBadRequest, "ID inválido")
	}

	input := new(dto.UpdateCategoriaInput)
	if err := c.Bind(input); err != nil {
		return httperr.Detail(c, http.StatusBadRequest, "cuerpo de petición inválido")
	}
	if err := c.Validate(input); err != nil {
		return httperr.Detail(c, http.StatusBadRequest, err.Error())
	}

	cat, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		h.logger.Warn("failed to update categoria", zap.Int64("id", id), zap.Error(err))
		return httperr.JSON(c, err)
	}
	if cat == nil {
		return notFound(c, id)
	}
	return c.JSON(http.StatusOK, dto.NewCategoriaResponse(cat))
}

func (h *CategoriaHandler) ToggleActivo(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httperr.Detail(c, http.StatusBadRequest, "ID inválido")
	}

	cat, err := h.uc.ToggleActivo(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("failed to toggle categoria", zap.Int64("id", id), zap.Error(err))
		return httperr.JSON(c, err)
	}
	if cat == nil {
		return notFound(c, id)
	}
	return c.JSON(http.StatusOK, dto.NewCategoriaResponse(cat))
}

// Delete enforces the dependent-check here, at the calling layer: a categoria
// that still has subcategorias is not deletable.
func (h *CategoriaHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httperr.Detail(c, http.StatusBadRequest, "ID inválido")
	}

	ctx := c.Request().Context()
	subcategorias, err := h.uc.GetSubcategorias(ctx, id)
	if err != nil {
		h.logger.Error("failed to get subcategorias", zap.Int64("id", id), zap.Error(err))
		return httperr.JSON(c, err)
	}
	if len(subcategorias) > 0 {
		return httperr.Detail(c, http.StatusBadRequest, "no se puede eliminar una categoría que tiene subcategorías")
	}

	eliminado, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.logger.Error("failed to delete categoria", zap.Int64("id", id), zap.Error(err))
		return httperr.JSON(c, err)
	}
	if !eliminado {
		return notFound(c, id)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func notFound(c echo.Context, id int64) error {
	return httperr.Detail(c, http.StatusNotFound, fmt.Sprintf("categoría con ID %d no encontrada", id))
}
