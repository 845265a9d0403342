package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/infra"
	"sistemagestion/internal/model"
	"sistemagestion/internal/repository"
	"sistemagestion/internal/worker"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	resumenCacheTTL   = 5 * time.Minute
	resumenMaxEntries = 500
)

// ResumenService builds account statements for a counterparty: current
// debe/haber/saldo plus the movement history. Statements are cached in redis
// with a short TTL since balances change with every completed event.
type ResumenService interface {
	ResumenCliente(ctx context.Context, id uuid.UUID) (*dto.ResumenCuenta, error)
	ResumenProveedor(ctx context.Context, id uuid.UUID) (*dto.ResumenCuenta, error)
	ResumenClientePDF(ctx context.Context, id uuid.UUID) ([]byte, error)
	ResumenProveedorPDF(ctx context.Context, id uuid.UUID) ([]byte, error)
	EnviarResumenCliente(ctx context.Context, id uuid.UUID, email string) error
	EnviarResumenProveedor(ctx context.Context, id uuid.UUID, email string) error
}

// AvisoDispatcher enqueues notification emails. Satisfied by
// worker.Dispatcher.
type AvisoDispatcher interface {
	EnqueueEmail(ctx context.Context, payload interface{}) error
}

type resumenService struct {
	clientes    repository.ClienteRepository
	proveedores repository.ProveedorRepository
	movimientos repository.MovimientoRepository
	rdb         *redis.Client
	dispatcher  AvisoDispatcher
	pdfDir      string
}

func NewResumenService(
	clientes repository.ClienteRepository,
	proveedores repository.ProveedorRepository,
	movimientos repository.MovimientoRepository,
	rdb *redis.Client,
	dispatcher AvisoDispatcher,
	pdfDir string,
) ResumenService {
	return &resumenService{
		clientes:    clientes,
		proveedores: proveedores,
		movimientos: movimientos,
		rdb:         rdb,
		dispatcher:  dispatcher,
		pdfDir:      pdfDir,
	}
}

func (s *resumenService) ResumenCliente(ctx context.Context, id uuid.UUID) (*dto.ResumenCuenta, error) {
	cacheKey := "resumen:cliente:" + id.String()
	if cached := s.leerCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	c, err := s.clientes.FindByID(ctx, id)
	if err != nil {
		return nil, resolverNotFound(err, ErrContraparteNoEncontrada)
	}

	movs, _, err := s.movimientos.List(ctx, dto.MovimientoFilter{
		ClienteID: id.String(), Page: 1, Limit: resumenMaxEntries,
	})
	if err != nil {
		return nil, err
	}

	resumen := &dto.ResumenCuenta{
		ContraparteID: c.ID,
		Contraparte:   c.RazonSocial,
		CUIT:          c.CUIT,
		Debe:          c.Debe,
		Haber:         c.Haber,
		Saldo:         c.Saldo,
		Movimientos:   resumirMovimientos(movs),
	}
	s.guardarCache(ctx, cacheKey, resumen)
	return resumen, nil
}

func (s *resumenService) ResumenProveedor(ctx context.Context, id uuid.UUID) (*dto.ResumenCuenta, error) {
	cacheKey := "resumen:proveedor:" + id.String()
	if cached := s.leerCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	p, err := s.proveedores.FindByID(ctx, id)
	if err != nil {
		return nil, resolverNotFound(err, ErrContraparteNoEncontrada)
	}

	movs, _, err := s.movimientos.List(ctx, dto.MovimientoFilter{
		ProveedorID: id.String(), Page: 1, Limit: resumenMaxEntries,
	})
	if err != nil {
		return nil, err
	}

	resumen := &dto.ResumenCuenta{
		ContraparteID: p.ID,
		Contraparte:   p.RazonSocial,
		CUIT:          p.CUIT,
		Debe:          p.Debe,
		Haber:         p.Haber,
		Saldo:         p.Saldo,
		Movimientos:   resumirMovimientos(movs),
	}
	s.guardarCache(ctx, cacheKey, resumen)
	return resumen, nil
}

func (s *resumenService) ResumenClientePDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	resumen, err := s.ResumenCliente(ctx, id)
	if err != nil {
		return nil, err
	}
	return infra.GenerarResumenPDF(resumen)
}

func (s *resumenService) ResumenProveedorPDF(ctx context.Context, id uuid.UUID) ([]byte, error) {
	resumen, err := s.ResumenProveedor(ctx, id)
	if err != nil {
		return nil, err
	}
	return infra.GenerarResumenPDF(resumen)
}

// EnviarResumenCliente renders the statement to PDF_STORAGE_PATH and queues
// an email with the file attached. Delivery is asynchronous; a dead SMTP
// relay never blocks the request.
func (s *resumenService) EnviarResumenCliente(ctx context.Context, id uuid.UUID, email string) error {
	resumen, err := s.ResumenCliente(ctx, id)
	if err != nil {
		return err
	}
	return s.enviarResumen(ctx, "cliente", resumen, email)
}

func (s *resumenService) EnviarResumenProveedor(ctx context.Context, id uuid.UUID, email string) error {
	resumen, err := s.ResumenProveedor(ctx, id)
	if err != nil {
		return err
	}
	return s.enviarResumen(ctx, "proveedor", resumen, email)
}

func (s *resumenService) enviarResumen(ctx context.Context, tipo string, resumen *dto.ResumenCuenta, email string) error {
	pdfBytes, err := infra.GenerarResumenPDF(resumen)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.pdfDir, 0o755); err != nil {
		return err
	}
	pdfPath := filepath.Join(s.pdfDir, fmt.Sprintf("resumen_%s_%s_%d.pdf", tipo, resumen.ContraparteID, time.Now().Unix()))
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		return err
	}

	payload := worker.EmailJobPayload{
		ToEmail: email,
		Subject: fmt.Sprintf("Resumen de cuenta — %s", resumen.Contraparte),
		Body: fmt.Sprintf(
			"Se adjunta el resumen de cuenta de %s. Saldo actual: $%s.",
			resumen.Contraparte, resumen.Saldo.StringFixed(2),
		),
		PDFPath: pdfPath,
	}
	if err := s.dispatcher.EnqueueEmail(ctx, payload); err != nil {
		return err
	}
	log.Info().Str("to", email).Str("contraparte", resumen.Contraparte).Msg("resumen encolado para envío")
	return nil
}

func resumirMovimientos(movs []model.Movimiento) []dto.ResumenMovimiento {
	out := make([]dto.ResumenMovimiento, len(movs))
	for i, m := range movs {
		descripcion := ""
		if m.Descripcion != nil {
			descripcion = *m.Descripcion
		}
		out[i] = dto.ResumenMovimiento{
			ID:          m.ID,
			Fecha:       m.CreatedAt.Format("2006-01-02"),
			Tipo:        m.Tipo,
			Descripcion: descripcion,
			Monto:       m.Monto,
			Estado:      m.Estado,
		}
	}
	return out
}

func (s *resumenService) leerCache(ctx context.Context, key string) *dto.ResumenCuenta {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var resumen dto.ResumenCuenta
	if err := json.Unmarshal([]byte(raw), &resumen); err != nil {
		return nil
	}
	return &resumen
}

func (s *resumenService) guardarCache(ctx context.Context, key string, resumen *dto.ResumenCuenta) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(resumen)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, resumenCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("no se pudo cachear el resumen")
	}
}
