package handler

import (
	"net/http"
	"strconv"

	"sistemagestion/internal/apierror"
	"sistemagestion/internal/dto"
	"sistemagestion/internal/service"

	"github.com/gin-gonic/gin"
)

type ChequesHandler struct {
	svc        service.ChequeService
	alertaDias int
}

func NewChequesHandler(svc service.ChequeService, alertaDias int) *ChequesHandler {
	return &ChequesHandler{svc: svc, alertaDias: alertaDias}
}

// Crear godoc
// @Summary      Registrar cheque
// @Tags         cheques
// @Security     BearerAuth
// @Param        body body dto.CrearChequeRequest true "Datos del cheque"
// @Success      201 {object} model.Cheque
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/cheques [post]
func (h *ChequesHandler) Crear(c *gin.Context) {
	var req dto.CrearChequeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cheque, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cheque)
}

// Listar godoc
// @Summary      Listar cheques
// @Tags         cheques
// @Security     BearerAuth
// @Param        disponibles query bool   false "Solo cheques sin utilizar"
// @Param        clienteId   query string false "UUID del cliente"
// @Param        proveedorId query string false "UUID del proveedor"
// @Param        page        query int    false "Página (default 1)"
// @Param        limit       query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.PageResponse
// @Router       /v1/cheques [get]
func (h *ChequesHandler) Listar(c *gin.Context) {
	var filter dto.ChequeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	normalizePagination(&filter.Page, &filter.Limit)

	cheques, total, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPageResponse(cheques, total, filter.Page, filter.Limit))
}

// PorVencer godoc
// @Summary      Cheques próximos a vencer
// @Description  Cheques sin utilizar cuyo vencimiento cae dentro de la ventana de alerta.
// @Tags         cheques
// @Security     BearerAuth
// @Param        dias query int false "Días de anticipación (default: CHEQUE_ALERTA_DIAS)"
// @Success      200 {array} model.Cheque
// @Router       /v1/cheques/por-vencer [get]
func (h *ChequesHandler) PorVencer(c *gin.Context) {
	dias := h.alertaDias
	if raw := c.Query("dias"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, apierror.New("dias invalido"))
			return
		}
		dias = parsed
	}
	cheques, err := h.svc.ListarPorVencer(c.Request.Context(), dias)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cheques)
}

// Obtener godoc
// @Summary      Obtener cheque
// @Tags         cheques
// @Security     BearerAuth
// @Param        id path string true "UUID del cheque"
// @Success      200 {object} model.Cheque
// @Failure      404 {object} apierror.APIError
// @Router       /v1/cheques/{id} [get]
func (h *ChequesHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cheque, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cheque)
}

// Actualizar godoc
// @Summary      Actualizar cheque
// @Description  Solo cheques sin utilizar pueden modificarse.
// @Tags         cheques
// @Security     BearerAuth
// @Param        id   path string true "UUID del cheque"
// @Param        body body dto.ActualizarChequeRequest true "Campos a modificar"
// @Success      200 {object} model.Cheque
// @Failure      409 {object} apierror.APIError
// @Router       /v1/cheques/{id} [put]
func (h *ChequesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarChequeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cheque, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cheque)
}

// Eliminar godoc
// @Summary      Eliminar cheque
// @Description  Un cheque utilizado respalda un pago y no puede borrarse.
// @Tags         cheques
// @Security     BearerAuth
// @Param        id path string true "UUID del cheque"
// @Success      204
// @Failure      409 {object} apierror.APIError
// @Router       /v1/cheques/{id} [delete]
func (h *ChequesHandler) Eliminar(c *gin.Context) {
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
