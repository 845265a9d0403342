package handler

import (
	"net/http"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/service"

	"github.com/gin-gonic/gin"
)

type ProveedoresHandler struct{ svc service.ProveedorService }

func NewProveedoresHandler(svc service.ProveedorService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear proveedor
// @Tags         proveedores
// @Security     BearerAuth
// @Param        body body dto.CrearContraparteRequest true "Datos del proveedor"
// @Success      201 {object} model.Proveedor
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/proveedores [post]
func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.CrearContraparteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	proveedor, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, proveedor)
}

// Listar godoc
// @Summary      Listar proveedores activos
// @Tags         proveedores
// @Security     BearerAuth
// @Success      200 {array} model.Proveedor
// @Router       /v1/proveedores [get]
func (h *ProveedoresHandler) Listar(c *gin.Context) {
	proveedores, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proveedores)
}

// Obtener godoc
// @Summary      Obtener proveedor con saldos
// @Tags         proveedores
// @Security     BearerAuth
// @Param        id path string true "UUID del proveedor"
// @Success      200 {object} model.Proveedor
// @Failure      404 {object} apierror.APIError
// @Router       /v1/proveedores/{id} [get]
func (h *ProveedoresHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	proveedor, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proveedor)
}

// Actualizar godoc
// @Summary      Actualizar proveedor
// @Tags         proveedores
// @Security     BearerAuth
// @Param        id path string true "UUID del proveedor"
// @Param        body body dto.ActualizarContraparteRequest true "Campos a modificar"
// @Success      200 {object} model.Proveedor
// @Router       /v1/proveedores/{id} [put]
func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarContraparteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	proveedor, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, proveedor)
}

// Eliminar godoc
// @Summary      Desactivar proveedor
// @Description  Baja lógica: el proveedor deja de listarse pero su historial y saldos se conservan.
// @Tags         proveedores
// @Security     BearerAuth
// @Param        id path string true "UUID del proveedor"
// @Success      204
// @Router       /v1/proveedores/{id} [delete]
func (h *ProveedoresHandler) Eliminar(c *gin.Context) {
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

// Reactivar godoc
// @Summary      Reactivar proveedor
// @Tags         proveedores
// @Security     BearerAuth
// @Param        id path string true "UUID del proveedor"
// @Success      204
// @Router       /v1/proveedores/{id}/reactivar [post]
func (h *ProveedoresHandler) Reactivar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Reactivar(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
