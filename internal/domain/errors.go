package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound no existe un registro activo con ese ID.
	ErrNotFound = errors.New("registro no encontrado")
	// ErrNotFoundInTrash restore y forceDelete exigen un registro en papelera.
	ErrNotFoundInTrash = errors.New("registro no encontrado en papelera")
	// ErrInvalidCredentials nombre o contraseña incorrectos en el login.
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)
