package handler

import (
	"net/http"

	"sistemagestion/internal/apierror"
	"sistemagestion/internal/dto"
	"sistemagestion/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PagosHandler struct{ svc service.PagoService }

func NewPagosHandler(svc service.PagoService) *PagosHandler { return &PagosHandler{svc: svc} }

// Crear godoc
// @Summary      Registrar pago
// @Description  Aplica un pago contra un movimiento completado. Pagos con método CHEQUE consumen el cheque indicado.
// @Tags         pagos
// @Security     BearerAuth
// @Param        body body dto.CrearPagoRequest true "Detalle del pago"
// @Success      201 {object} map[string]interface{}
// @Failure      409 {object} apierror.APIError
// @Router       /v1/pagos [post]
func (h *PagosHandler) Crear(c *gin.Context) {
	var req dto.CrearPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pago, saldo, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"pago": pago, "saldo": saldo})
}

// Obtener godoc
// @Summary      Obtener pago
// @Tags         pagos
// @Security     BearerAuth
// @Param        id path string true "UUID del pago"
// @Success      200 {object} model.Pago
// @Failure      404 {object} apierror.APIError
// @Router       /v1/pagos/{id} [get]
func (h *PagosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pago, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pago)
}

// ListarPorMovimiento godoc
// @Summary      Listar pagos de un movimiento
// @Tags         pagos
// @Security     BearerAuth
// @Param        movimientoId query string true "UUID del movimiento"
// @Success      200 {array} model.Pago
// @Router       /v1/pagos [get]
func (h *PagosHandler) ListarPorMovimiento(c *gin.Context) {
	movimientoID, err := uuid.Parse(c.Query("movimientoId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("movimientoId invalido"))
		return
	}
	pagos, err := h.svc.ListarPorMovimiento(c.Request.Context(), movimientoID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pagos)
}

// Eliminar godoc
// @Summary      Eliminar pago
// @Description  Revierte el efecto contable del pago y libera el cheque asociado.
// @Tags         pagos
// @Security     BearerAuth
// @Param        id path string true "UUID del pago"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/pagos/{id} [delete]
func (h *PagosHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	saldo, err := h.svc.Eliminar(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saldo": saldo})
}
