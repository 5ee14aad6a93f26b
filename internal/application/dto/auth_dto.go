package dto

import "github.com/jhoicas/fakemart-api/internal/domain/entity"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginResponse token firmado y datos del usuario autenticado.
type LoginResponse struct {
	Status     string       `json:"status"`
	Token      string       `json:"token"`
	User       *entity.User `json:"user"`
	StatusCode int          `json:"status_code"`
}
