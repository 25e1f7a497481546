package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/serviapp/catalog-service/internal/httperr"
	"github.com/serviapp/catalog-service/internal/servicio"
	"github.com/serviapp/catalog-service/internal/servicio/dto"
	"github.com/serviapp/catalog-service/pkg/logger"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

type ServicioHandler struct {
	uc     servicio.UseCase
	logger *logger.Logger
}

func NewServicioHandler(uc servicio.UseCase, log *logger.Logger) *ServicioHandler {
	return &ServicioHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ServicioHandler) Routes(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/count", h.Count)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.PATCH("/:id/toggle-activo", h.ToggleActivo)
	g.DELETE("/:id", h.Delete)
}

func (h *ServicioHandler) List(c echo.Context) error {
	filters := &dto.ServicioFilters{
		Skip:        cast.ToInt(c.QueryParam("skip")),
		Limit:       cast.ToInt(c.QueryParam("limit")),
		SoloActivos: cast.ToBool(c.QueryParam("solo_activos")),
	}
	if v := c.QueryParam("categoria_id"); v != "" {
		catID := cast.ToInt64(v)
		filters.CategoriaID = &catID
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

	servicios, err := h.uc.List(c.Request().Context(), filters)
	if err != nil {
		h.logger.Error("failed to list servicios", zap.Error(err))
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, dto.NewServicioResponseList(servicios))
}

func (h *ServicioHandler) Count(c echo.Context) error {
	total, err := h.uc.Count(c.Request().Context(), cast.ToBool(c.QueryParam("solo_activos")))
	if err != nil {
		h.logger.Error("failed to count servicios", zap.Error(err))
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"total": total})
}

func (h *ServicioHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httperr.Detail(c, http.StatusBadRequest, "ID inválido")
	}

	srv, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("failed to get servicio", zap.Int64("id", id), zap.Error(err))
		return httperr.JSON(c, err)
	}
	if srv == nil {
		return notFound(c, id)
	}
	return c.JSON(http.StatusOK, dto.NewServicioResponse(srv))
}

func (h *ServicioHandler) Create(c echo.Context) error {
	input := new(dto.CreateServicioInput)
	if err := c.Bind(input); err != nil {
		return httperr.Detail(c, http.StatusBadRequest, "cuerpo de petición inválido")
	}
	if err := c.Validate(input); err != nil {
		return httperr.Detail(c, http.StatusBadRequest, err.Error())
	}

	srv, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		h.logger.Warn("failed to create servicio", zap.String("nombre", input.Nombre), zap.Error(err))
		return httperr.JSON(c, err)
	}
	return c.JSON(http.StatusCreated, dto.NewServicioResponse(srv))
}

func (h *ServicioHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httperr.Detail(c, http.StatusBadRequest, "ID inválido")
	}

	input := new(dto.UpdateServicioInput)
	if err := c.Bind(input); err != nil {
		return httperr.Detail(c, http.StatusBadRequest, "cuerpo de petición inválido")
	}
	if err := c.Validate(input); err != nil {
		return httperr.Detail(c, http.StatusBadRequest, err.Error())
	}

	srv, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		h.logger.Warn("failed to update servicio", zap.Int64("id", id), zap.Error(err))
		return httperr.JSON(c, err)
	}
	if srv == nil {
		return notFound(c, id)
	}
	return c.JSON(http.StatusOK, dto.NewServicioResponse(srv))
}

func (h *ServicioHandler) ToggleActivo(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httperr.Detail(c, http.StatusBadRequest, "ID inválido")
	}

	srv, err := h.uc.ToggleActivo(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("failed to toggle servicio", zap.Int64("id", id), zap.Error(err))
		return httperr.JSON(c, err)
	}
	if srv == nil {
		return notFound(c, id)
	}
	return c.JSON(http.StatusOK, dto.NewServicioResponse(srv))
}

func (h *ServicioHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return httperr.Detail(c, http.StatusBadRequest, "ID inválido")
	}

	eliminado, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("failed to delete servicio", zap.Int64("id", id), zap.Error(err))
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
	return httperr.Detail(c, http.StatusNotFound, fmt.Sprintf("servicio con ID %d no encontrado", id))
}
