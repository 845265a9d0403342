package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}

type UsuarioResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Nombre   string  `json:"nombre"`
	Email    *string `json:"email,omitempty"`
	Rol      string  `json:"rol"`
	Activo   bool    `json:"activo"`
}

// SaldoContraparte is the running balance snapshot returned after every
// ledger mutation so handlers can echo the post-event state.
type SaldoContraparte struct {
	ContraparteID uuid.UUID       `json:"contraparteId"`
	Contraparte   string          `json:"contraparte"`
	Debe          decimal.Decimal `json:"debe"`
	Haber         decimal.Decimal `json:"haber"`
	Saldo         decimal.Decimal `json:"saldo"`
}

type PageResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int64       `json:"totalPages"`
}

func NewPageResponse(data interface{}, total int64, page, limit int) PageResponse {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return PageResponse{Data: data, Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

type ResumenCuenta struct {
	ContraparteID uuid.UUID           `json:"contraparteId"`
	Contraparte   string              `json:"contraparte"`
	CUIT          *string             `json:"cuit,omitempty"`
	Debe          decimal.Decimal     `json:"debe"`
	Haber         decimal.Decimal     `json:"haber"`
	Saldo         decimal.Decimal     `json:"saldo"`
	Movimientos   []ResumenMovimiento `json:"movimientos"`
}

type ResumenMovimiento struct {
	ID          uuid.UUID       `json:"id"`
	Fecha       string          `json:"fecha"`
	Tipo        string          `json:"tipo"`
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
	Estado      string          `json:"estado"`
}
