package service

import (
	"context"
	"testing"

	"sistemagestion/internal/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClienteCRUD(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	ctx := context.Background()

	cuit := "30-11222333-4"
	c, err := svc.Crear(ctx, dto.CrearContraparteRequest{
		RazonSocial: "Almacén El Sol",
		CUIT:        &cuit,
	})
	require.NoError(t, err)
	assert.True(t, c.Activo)
	assert.True(t, c.Saldo.IsZero())

	nuevaRazon := "Almacén El Sol SRL"
	actualizado, err := svc.Actualizar(ctx, c.ID, dto.ActualizarContraparteRequest{
		RazonSocial: &nuevaRazon,
	})
	require.NoError(t, err)
	assert.Equal(t, nuevaRazon, actualizado.RazonSocial)
	assert.Equal(t, cuit, *actualizado.CUIT)

	lista, err := svc.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, lista, 1)

	require.NoError(t, svc.Eliminar(ctx, c.ID))
	lista, err = svc.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, lista)

	// soft delete keeps the row reachable by id
	obtenido, err := svc.Obtener(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, obtenido.Activo)

	require.NoError(t, svc.Reactivar(ctx, c.ID))
	lista, err = svc.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, lista, 1)
}

func TestClienteNoEncontrado(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())
	ctx := context.Background()

	_, err := svc.Obtener(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrContraparteNoEncontrada)

	err = svc.Eliminar(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrContraparteNoEncontrada)
}

func TestProveedorCRUD(t *testing.T) {
	repo := newStubProveedorRepo()
	svc := NewProveedorService(repo)
	ctx := context.Background()

	p, err := svc.Crear(ctx, dto.CrearContraparteRequest{RazonSocial: "Mayorista Centro"})
	require.NoError(t, err)
	assert.True(t, p.Activo)

	require.NoError(t, svc.Eliminar(ctx, p.ID))
	obtenido, err := svc.Obtener(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, obtenido.Activo)

	require.NoError(t, svc.Reactivar(ctx, p.ID))
	lista, err := svc.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, lista, 1)
}
