package service

import (
	"context"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/model"
	"sistemagestion/internal/repository"

	"github.com/google/uuid"
)

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearContraparteRequest) (*model.Cliente, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	Listar(ctx context.Context) ([]model.Cliente, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarContraparteRequest) (*model.Cliente, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	clientes repository.ClienteRepository
}

func NewClienteService(clientes repository.ClienteRepository) ClienteService {
	return &clienteService{clientes: clientes}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearContraparteRequest) (*model.Cliente, error) {
	c := &model.Cliente{
		RazonSocial: req.RazonSocial,
		CUIT:        req.CUIT,
		Telefono:    req.Telefono,
		Email:       req.Email,
		Direccion:   req.Direccion,
		Activo:      true,
	}
	if err := s.clientes.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, err := s.clientes.FindByID(ctx, id)
	if err != nil {
		return nil, resolverNotFound(err, ErrContraparteNoEncontrada)
	}
	return c, nil
}

func (s *clienteService) Listar(ctx context.Context) ([]model.Cliente, error) {
	return s.clientes.List(ctx)
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarContraparteRequest) (*model.Cliente, error) {
	c, err := s.clientes.FindByID(ctx, id)
	if err != nil {
		return nil, resolverNotFound(err, ErrContraparteNoEncontrada)
	}

	if req.RazonSocial != nil {
		c.RazonSocial = *req.RazonSocial
	}
	if req.CUIT != nil {
		c.CUIT = req.CUIT
	}
	if req.Telefono != nil {
		c.Telefono = req.Telefono
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Direccion != nil {
		c.Direccion = req.Direccion
	}

	if err := s.clientes.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Eliminar deactivates the client. History and balances stay queryable, the
// row never goes away.
func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.clientes.FindByID(ctx, id); err != nil {
		return resolverNotFound(err, ErrContraparteNoEncontrada)
	}
	return s.clientes.SoftDelete(ctx, id)
}

func (s *clienteService) Reactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.clientes.FindByID(ctx, id); err != nil {
		return resolverNotFound(err, ErrContraparteNoEncontrada)
	}
	return s.clientes.Reactivar(ctx, id)
}
