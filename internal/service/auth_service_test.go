package service_test

import (
	"context"
	"testing"

	"github.com/DragnelDev/sis257-bar-restaurant/internal/config"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/dto"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/model"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/repository"
	"github.com/DragnelDev/sis257-bar-restaurant/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username && u.Activo {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = false
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func newAuthEnv() (service.AuthService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 8,
		JWTRefreshHours:    72,
	}
	return service.NewAuthService(repo, cfg), repo
}

func TestLogin_Correcto(t *testing.T) {
	svc, _ := newAuthEnv()
	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "cajero1",
		Nombre:   "Cajero Uno",
		Email:    "cajero1@bar.local",
		Password: "secreta123",
		Rol:      "cajero",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "cajero1", Password: "secreta123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "cajero", resp.User.Rol)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	svc, _ := newAuthEnv()
	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "cajero1",
		Nombre:   "Cajero Uno",
		Email:    "cajero1@bar.local",
		Password: "secreta123",
		Rol:      "cajero",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "cajero1", Password: "otra"})
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	svc, repo := newAuthEnv()
	resp, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "mesero1",
		Nombre:   "Mesero Uno",
		Email:    "mesero1@bar.local",
		Password: "secreta123",
		Rol:      "mesero",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Desactivar(context.Background(), uuid.MustParse(resp.ID)))

	_, err = svc.Login(context.Background(), dto.LoginRequest{Username: "mesero1", Password: "secreta123"})
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestCrearUsuario_UsernameDuplicado(t *testing.T) {
	svc, _ := newAuthEnv()
	req := dto.CrearUsuarioRequest{
		Username: "admin",
		Nombre:   "Admin",
		Email:    "admin@bar.local",
		Password: "secreta123",
		Rol:      "administrador",
	}
	_, err := svc.CrearUsuario(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CrearUsuario(context.Background(), req)
	assert.ErrorContains(t, err, "ya está en uso")
}

func TestRefresh_ReemiteTokens(t *testing.T) {
	svc, _ := newAuthEnv()
	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "supervisor1",
		Nombre:   "Supervisor",
		Email:    "sup@bar.local",
		Password: "secreta123",
		Rol:      "supervisor",
	})
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "supervisor1", Password: "secreta123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestRefresh_TokenInvalido(t *testing.T) {
	svc, _ := newAuthEnv()
	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	assert.Error(t, err)
}
