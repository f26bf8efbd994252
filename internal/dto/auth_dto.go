package dto

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"`
	User         UsuarioResponse `json:"user"`
}

type CrearUsuarioRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Nombre   string `json:"nombre"   validate:"required,max=100"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=4"`
	Rol      string `json:"rol"      validate:"required,oneof=cajero mesero supervisor administrador"`
}

type ActualizarUsuarioRequest struct {
	Nombre   *string `json:"nombre"   validate:"omitempty,max=100"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=4"`
	Rol      *string `json:"rol"      validate:"omitempty,oneof=cajero mesero supervisor administrador"`
}

type UsuarioResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email,omitempty"`
	Rol      string `json:"rol"`
	Activo   bool   `json:"activo"`
}
