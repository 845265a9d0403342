package handler

import (
	"fmt"
	"net/http"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/service"

	"github.com/gin-gonic/gin"
)

type ResumenHandler struct{ svc service.ResumenService }

func NewResumenHandler(svc service.ResumenService) *ResumenHandler {
	return &ResumenHandler{svc: svc}
}

// ResumenCliente godoc
// @Summary      Resumen de cuenta de un cliente
// @Description  Saldos actuales más el historial de movimientos. Cacheado en redis por 5 minutos.
// @Tags         resumen
// @Security     BearerAuth
// @Param        id path string true "UUID del cliente"
// @Success      200 {object} dto.ResumenCuenta
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id}/resumen [get]
func (h *ResumenHandler) ResumenCliente(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resumen, err := h.svc.ResumenCliente(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumen)
}

// ResumenProveedor godoc
// @Summary      Resumen de cuenta de un proveedor
// @Tags         resumen
// @Security     BearerAuth
// @Param        id path string true "UUID del proveedor"
// @Success      200 {object} dto.ResumenCuenta
// @Failure      404 {object} apierror.APIError
// @Router       /v1/proveedores/{id}/resumen [get]
func (h *ResumenHandler) ResumenProveedor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resumen, err := h.svc.ResumenProveedor(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resumen)
}

// ResumenClientePDF godoc
// @Summary      Resumen de cuenta de un cliente en PDF
// @Tags         resumen
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id path string true "UUID del cliente"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id}/resumen/pdf [get]
func (h *ResumenHandler) ResumenClientePDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pdfBytes, err := h.svc.ResumenClientePDF(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=resumen_%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// EnviarResumenCliente godoc
// @Summary      Enviar resumen de cuenta de un cliente por email
// @Description  Genera el PDF y encola el envío; la entrega es asíncrona.
// @Tags         resumen
// @Security     BearerAuth
// @Param        id path string true "UUID del cliente"
// @Param        body body dto.EnviarResumenRequest true "Destinatario"
// @Success      202 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id}/resumen/enviar [post]
func (h *ResumenHandler) EnviarResumenCliente(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.EnviarResumenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarResumenCliente(c.Request.Context(), id, req.Email); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"mensaje": "resumen encolado para envío", "email": req.Email})
}

// EnviarResumenProveedor godoc
// @Summary      Enviar resumen de cuenta de un proveedor por email
// @Tags         resumen
// @Security     BearerAuth
// @Param        id path string true "UUID del proveedor"
// @Param        body body dto.EnviarResumenRequest true "Destinatario"
// @Success      202 {object} map[string]interface{}
// @Failure      404 {object} apierror.APIError
// @Router       /v1/proveedores/{id}/resumen/enviar [post]
func (h *ResumenHandler) EnviarResumenProveedor(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.EnviarResumenRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.EnviarResumenProveedor(c.Request.Context(), id, req.Email); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"mensaje": "resumen encolado para envío", "email": req.Email})
}

// ResumenProveedorPDF godoc
// @Summary      Resumen de cuenta de un proveedor en PDF
// @Tags         resumen
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        id path string true "UUID del proveedor"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /v1/proveedores/{id}/resumen/pdf [get]
func (h *ResumenHandler) ResumenProveedorPDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pdfBytes, err := h.svc.ResumenProveedorPDF(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=resumen_%s.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
