package handler

import (
	"net/http"

	"sistemagestion/internal/apierror"
	"sistemagestion/internal/dto"
	"sistemagestion/internal/service"

	"github.com/gin-gonic/gin"
)

type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler { return &ComprasHandler{svc: svc} }

// Crear godoc
// @Summary      Registrar compra a proveedor
// @Description  Crea una compra en estado PENDIENTE. Compras con método CHEQUE deben referenciar un cheque disponible.
// @Tags         compras
// @Security     BearerAuth
// @Param        body body dto.CrearCompraRequest true "Detalle de la compra"
// @Success      201 {object} model.Compra
// @Failure      400 {object} apierror.APIError
// @Router       /v1/compras [post]
func (h *ComprasHandler) Crear(c *gin.Context) {
	var req dto.CrearCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	compra, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, compra)
}

// Listar godoc
// @Summary      Listar compras
// @Tags         compras
// @Security     BearerAuth
// @Param        estado      query string false "PENDIENTE | COMPLETADO | CANCELADO | all"
// @Param        proveedorId query string false "UUID del proveedor"
// @Param        desde       query string false "Fecha YYYY-MM-DD"
// @Param        hasta       query string false "Fecha YYYY-MM-DD"
// @Param        page        query int    false "Página (default 1)"
// @Param        limit       query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.PageResponse
// @Router       /v1/compras [get]
func (h *ComprasHandler) Listar(c *gin.Context) {
	var filter dto.CompraFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	normalizePagination(&filter.Page, &filter.Limit)

	compras, total, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(compras, total, filter.Page, filter.Limit))
}

// Obtener godoc
// @Summary      Obtener compra
// @Tags         compras
// @Security     BearerAuth
// @Param        id path string true "UUID de la compra"
// @Success      200 {object} model.Compra
// @Failure      404 {object} apierror.APIError
// @Router       /v1/compras/{id} [get]
func (h *ComprasHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	compra, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, compra)
}

// CambiarEstado godoc
// @Summary      Cambiar estado de la compra
// @Description  PENDIENTE→COMPLETADO debita el total del saldo del proveedor y consume el cheque; COMPLETADO y CANCELADO son terminales. Para deshacer una compra completada use DELETE.
// @Tags         compras
// @Security     BearerAuth
// @Param        id   path string true "UUID de la compra"
// @Param        body body dto.ActualizarEstadoRequest true "Nuevo estado"
// @Success      200 {object} map[string]interface{}
// @Failure      409 {object} apierror.APIError
// @Router       /v1/compras/{id}/estado [put]
func (h *ComprasHandler) CambiarEstado(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarEstadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	compra, saldo, err := h.svc.CambiarEstado(c.Request.Context(), id, req.Estado)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"compra": compra, "saldo": saldo})
}

// Eliminar godoc
// @Summary      Eliminar compra
// @Description  Revierte el efecto contable si la compra estaba completada.
// @Tags         compras
// @Security     BearerAuth
// @Param        id path string true "UUID de la compra"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/compras/{id} [delete]
func (h *ComprasHandler) Eliminar(c *gin.Context) {
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
