package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcalderon/inventario-movil/internal/application/catalog"
	"github.com/jcalderon/inventario-movil/internal/application/dto"
	"github.com/jcalderon/inventario-movil/internal/application/proximity"
	"github.com/jcalderon/inventario-movil/internal/domain"
)

// LocationHandler maneja las peticiones HTTP de bodegas (registro, tracking y cercanía).
type LocationHandler struct {
	uc     *catalog.LocationUseCase
	nearby *proximity.NearbyUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *catalog.LocationUseCase, nearby *proximity.NearbyUseCase) *LocationHandler {
	return &LocationHandler{uc: uc, nearby: nearby}
}

// Create godoc
// @Summary      Registrar bodega (fija o móvil)
// @Description  Crea la bodega; si se envía lat/lon se guarda como posición inicial.
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "locationId, name; isMobile, device, posición opcionales"
// @Success      201   {object}  dto.LocationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	actor := GetActorRecID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), actor, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "locationId y name son requeridos; lat/lon van juntos"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el locationId ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdatePosition godoc
// @Summary      Actualizar ubicación de bodega móvil (tracking en vivo)
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        locationId  path  string  true  "Código de la bodega"
// @Param        body  body  dto.UpdatePositionRequest  true  "latitude y longitude obligatorios"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locations/{locationId}/position [put]
func (h *LocationHandler) UpdatePosition(c *fiber.Ctx) error {
	actor := GetActorRecID(c)
	if actor == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdatePositionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.UpdatePosition(c.Context(), actor, c.Params("locationId"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "latitude y longitude son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el locationId no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// List godoc
// @Summary      Listado de bodegas
// @Description  Incluye bodegas móviles con su última posición conocida.
// @Tags         locations
// @Produce      json
// @Param        q           query  string  false  "Busca en locationId, name, deviceId, plate, driverName"
// @Param        locationId  query  string  false  "Filtro exacto"
// @Param        active      query  bool    false  "Filtro exacto"
// @Param        isMobile    query  bool    false  "Filtro exacto"
// @Param        page        query  int     false  "Página (default 1)"
// @Param        pageSize    query  int     false  "Tamaño de página (default 25, máx 200)"
// @Success      200  {object}  dto.PagedResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/locations [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	q := dto.ListLocationsQuery{Page: 1, PageSize: 25}
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	locs, total, page, pageSize, err := h.uc.List(c.Context(), q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(dto.NewPagedResponse(page, pageSize, total, locs))
}

// Near godoc
// @Summary      Bodegas cercanas (radio en km)
// @Description  Distancia ortodrómica (haversine) a cada bodega posicionada, orden ascendente.
// @Tags         locations
// @Produce      json
// @Param        lat       query  number  true   "Latitud del punto de consulta"
// @Param        lon       query  number  true   "Longitud del punto de consulta"
// @Param        radiusKm  query  number  false  "Radio en km, (0,200] (default 10)"
// @Param        isMobile  query  bool    false  "Solo bodegas móviles / fijas"
// @Param        limit     query  int     false  "Máximo de resultados, [1,200] (default 50)"
// @Success      200  {array}   dto.NearbyLocationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/locations/near [get]
func (h *LocationHandler) Near(c *fiber.Ctx) error {
	q := dto.NearQuery{RadiusKm: proximity.DefaultRadiusKm, Limit: proximity.DefaultLimit}
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.nearby.FindNear(c.Context(), q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lat y lon son requeridos; radiusKm (0,200]"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
	return c.JSON(out)
}
