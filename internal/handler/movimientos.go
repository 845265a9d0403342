package handler

import (
	"net/http"

	"sistemagestion/internal/apierror"
	"sistemagestion/internal/dto"
	"sistemagestion/internal/service"

	"github.com/gin-gonic/gin"
)

type MovimientosHandler struct{ svc service.MovimientoService }

func NewMovimientosHandler(svc service.MovimientoService) *MovimientosHandler {
	return &MovimientosHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar movimiento de cuenta corriente
// @Description  Crea un movimiento en estado PENDIENTE. El saldo de la contraparte no cambia hasta completarlo.
// @Tags         movimientos
// @Security     BearerAuth
// @Param        body body dto.CrearMovimientoRequest true "Detalle del movimiento"
// @Success      201 {object} model.Movimiento
// @Failure      400 {object} apierror.APIError
// @Router       /v1/movimientos [post]
func (h *MovimientosHandler) Crear(c *gin.Context) {
	var req dto.CrearMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// Listar godoc
// @Summary      Listar movimientos
// @Tags         movimientos
// @Security     BearerAuth
// @Param        estado      query string false "PENDIENTE | COMPLETADO | CANCELADO | all"
// @Param        tipo        query string false "CREDITO | DEBITO"
// @Param        clienteId   query string false "UUID del cliente"
// @Param        proveedorId query string false "UUID del proveedor"
// @Param        page        query int    false "Página (default 1)"
// @Param        limit       query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.PageResponse
// @Router       /v1/movimientos [get]
func (h *MovimientosHandler) Listar(c *gin.Context) {
	var filter dto.MovimientoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	normalizePagination(&filter.Page, &filter.Limit)

	movimientos, total, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(movimientos, total, filter.Page, filter.Limit))
}

// Obtener godoc
// @Summary      Obtener movimiento con sus pagos
// @Tags         movimientos
// @Security     BearerAuth
// @Param        id path string true "UUID del movimiento"
// @Success      200 {object} model.Movimiento
// @Failure      404 {object} apierror.APIError
// @Router       /v1/movimientos/{id} [get]
func (h *MovimientosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	m, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// CambiarEstado godoc
// @Summary      Cambiar estado del movimiento
// @Description  PENDIENTE→COMPLETADO aplica el evento sobre el saldo; PENDIENTE→CANCELADO no lo toca. COMPLETADO y CANCELADO son terminales. Devuelve el saldo resultante.
// @Tags         movimientos
// @Security     BearerAuth
// @Param        id   path string true "UUID del movimiento"
// @Param        body body dto.ActualizarEstadoRequest true "Nuevo estado"
// @Success      200 {object} map[string]interface{}
// @Failure      409 {object} apierror.APIError
// @Router       /v1/movimientos/{id}/estado [put]
func (h *MovimientosHandler) CambiarEstado(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, saldo, err := h.svc.CambiarEstado(c.Request.Context(), id, req.Estado)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"movimiento": m, "saldo": saldo})
}

// Eliminar godoc
// @Summary      Eliminar movimiento
// @Description  Revierte los pagos y el efecto contable del movimiento antes de borrarlo.
// @Tags         movimientos
// @Security     BearerAuth
// @Param        id path string true "UUID del movimiento"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/movimientos/{id} [delete]
func (h *MovimientosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
