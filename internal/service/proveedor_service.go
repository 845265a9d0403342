package service

import (
	"context"

	"sistemagestion/internal/dto"
	"sistemagestion/internal/model"
	"sistemagestion/internal/repository"

	"github.com/google/uuid"
)

type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearContraparteRequest) (*model.Proveedor, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Proveedor, error)
	Listar(ctx context.Context) ([]model.Proveedor, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarContraparteRequest) (*model.Proveedor, error)
	Eliminar(ctx context.Context, id uuid.UUID) error
	Reactivar(ctx context.Context, id uuid.UUID) error
}

type proveedorService struct {
	proveedores repository.ProveedorRepository
}

func NewProveedorService(proveedores repository.ProveedorRepository) ProveedorService {
	return &proveedorService{proveedores: proveedores}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearContraparteRequest) (*model.Proveedor, error) {
	p := &model.Proveedor{
		RazonSocial: req.RazonSocial,
		CUIT:        req.CUIT,
		Telefono:    req.Telefono,
		Email:       req.Email,
		Direccion:   req.Direccion,
		Activo:      true,
	}
	if err := s.proveedores.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) Obtener(ctx context.Context, id uuid.UUID) (*model.Proveedor, error) {
	p, err := s.proveedores.FindByID(ctx, id)
	if err != nil {
		return nil, resolverNotFound(err, ErrContraparteNoEncontrada)
	}
	return p, nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]model.Proveedor, error) {
	return s.proveedores.List(ctx)
}

func (s *proveedorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarContraparteRequest) (*model.Proveedor, error) {
	p, err := s.proveedores.FindByID(ctx, id)
	if err != nil {
		return nil, resolverNotFound(err, ErrContraparteNoEncontrada)
	}

	if req.RazonSocial != nil {
		p.RazonSocial = *req.RazonSocial
	}
	if req.CUIT != nil {
		p.CUIT = req.CUIT
	}
	if req.Telefono != nil {
		p.Telefono = req.Telefono
	}
	if req.Email != nil {
		p.Email = req.Email
	}
	if req.Direccion != nil {
		p.Direccion = req.Direccion
	}

	if err := s.proveedores.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.proveedores.FindByID(ctx, id); err != nil {
		return resolverNotFound(err, ErrContraparteNoEncontrada)
	}
	return s.proveedores.SoftDelete(ctx, id)
}

func (s *proveedorService) Reactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.proveedores.FindByID(ctx, id); err != nil {
		return resolverNotFound(err, ErrContraparteNoEncontrada)
	}
	return s.proveedores.Reactivar(ctx, id)
}
