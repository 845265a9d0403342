package dto

// Listing filters bound from query strings. Page/Limit are normalized by the
// handlers before reaching the repositories.

type MovimientoFilter struct {
	Estado      string `form:"estado"`
	Tipo        string `form:"tipo"`
	ClienteID   string `form:"clienteId"`
	ProveedorID string `form:"proveedorId"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}

type CompraFilter struct {
	Estado      string `form:"estado"`
	ProveedorID string `form:"proveedorId"`
	Desde       string `form:"desde"`
	Hasta       string `form:"hasta"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}

type ChequeFilter struct {
	Disponibles bool   `form:"disponibles"`
	ClienteID   string `form:"clienteId"`
	ProveedorID string `form:"proveedorId"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}
