package service_test

import (
	"context"
	"testing"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClienteEnv() (service.ClienteService, *stubClienteRepo) {
	repo := newStubClienteRepo()
	return service.NewClienteService(repo), repo
}

func seedCliente(r *stubClienteRepo, nombre, nit string) *model.Cliente {
	c := &model.Cliente{ID: uuid.New(), NombreFiscal: nombre, NitCI: &nit}
	r.clientes[c.ID] = c
	return c
}

func TestResolver_PorIDExistente(t *testing.T) {
	svc, repo := newClienteEnv()
	c := seedCliente(repo, "Juan Pérez", "1234567")

	id, err := svc.ResolverTx(nil, &c.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, c.ID, *id)
}

func TestResolver_PorIDInexistente(t *testing.T) {
	svc, _ := newClienteEnv()
	desconocido := uuid.New()

	_, err := svc.ResolverTx(nil, &desconocido, nil, nil)
	assert.ErrorContains(t, err, "no encontrado")
}

func TestResolver_NitExistenteNoTocaNombre(t *testing.T) {
	svc, repo := newClienteEnv()
	c := seedCliente(repo, "Juan Pérez", "1234567")

	otroNombre := "Nombre Distinto"
	nit := "1234567"
	id, err := svc.ResolverTx(nil, nil, &nit, &otroNombre)
	require.NoError(t, err)
	assert.Equal(t, c.ID, *id)
	assert.Equal(t, "Juan Pérez", repo.clientes[c.ID].NombreFiscal)
}

func TestResolver_NitNuevoCreaCliente(t *testing.T) {
	svc, repo := newClienteEnv()

	nit := "7654321"
	nombre := "María López"
	id, err := svc.ResolverTx(nil, nil, &nit, &nombre)
	require.NoError(t, err)
	require.NotNil(t, id)

	creado := repo.clientes[*id]
	require.NotNil(t, creado)
	assert.Equal(t, "María López", creado.NombreFiscal)
	assert.Equal(t, "7654321", *creado.NitCI)
}

func TestResolver_NitNuevoSinNombreFiscal(t *testing.T) {
	svc, _ := newClienteEnv()

	nit := "7654321"
	_, err := svc.ResolverTx(nil, nil, &nit, nil)
	assert.ErrorContains(t, err, "nombreFiscal")
}

func TestResolver_SinDatosEsAnonimo(t *testing.T) {
	svc, _ := newClienteEnv()

	id, err := svc.ResolverTx(nil, nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, id)
}

func TestCrearCliente_NitDuplicado(t *testing.T) {
	svc, repo := newClienteEnv()
	seedCliente(repo, "Juan Pérez", "1234567")

	nit := "1234567"
	_, err := svc.Crear(context.Background(), dto.CrearClienteRequest{
		NombreFiscal: "Otro",
		NitCI:        &nit,
	})
	assert.ErrorContains(t, err, "Ya existe un cliente")
}
