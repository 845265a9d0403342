package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these onto
// HTTP status codes with errors.Is, so wrap them rather than rewording.
var (
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrUsuarioExistente      = errors.New("ya existe un usuario con ese nombre")
	ErrUsuarioNoEncontrado   = errors.New("usuario no encontrado")

	ErrMontoInvalido           = errors.New("el monto debe ser mayor a cero")
	ErrTipoInvalido            = errors.New("tipo de movimiento no reconocido")
	ErrContraparteAmbigua      = errors.New("debe indicarse exactamente un cliente o un proveedor")
	ErrContraparteNoEncontrada = errors.New("contraparte no encontrada")
	ErrContraparteInactiva     = errors.New("la contraparte está inactiva")

	ErrMovimientoNoEncontrado = errors.New("movimiento no encontrado")
	ErrTransicionInvalida     = errors.New("transición de estado no permitida")
	ErrSaldoInsuficiente      = errors.New("saldo insuficiente para registrar el movimiento")
	ErrEventoDuplicado        = errors.New("el evento ya fue procesado")

	ErrPagoNoEncontrado  = errors.New("pago no encontrado")
	ErrPagoExcedeMonto   = errors.New("el pago excede el monto pendiente del movimiento")
	ErrMovimientoCerrado = errors.New("el movimiento no admite más pagos")

	ErrCompraNoEncontrada = errors.New("compra no encontrada")

	ErrChequeNoEncontrado = errors.New("cheque no encontrado")
	ErrChequeUtilizado    = errors.New("el cheque ya fue utilizado")
	ErrChequeRequerido    = errors.New("debe indicarse un cheque para pagos con método CHEQUE")
)
