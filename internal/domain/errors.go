package domain

import (
	"errors"
	"fmt"
)

// MsgInvalidCredentials mensaje visible para el usuario cuando el login falla.
const MsgInvalidCredentials = "Invalid credentials. Please check your ID and password."

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidCredentials = errors.New(MsgInvalidCredentials)
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthenticated    = errors.New("sesión no iniciada")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUnknownView        = errors.New("vista desconocida")
	ErrStorageCorrupt     = errors.New("registro de identidad corrupto")
)

// FailureKind clasifica por qué falló una lectura o envío contra el backend remoto.
type FailureKind string

const (
	FailureTimeout   FailureKind = "timeout"
	FailureNetwork   FailureKind = "network"
	FailureServer    FailureKind = "server"
	FailureMalformed FailureKind = "malformed"
)

// UserMessage texto mostrado en el banner de error de cada clase de fallo.
func (k FailureKind) UserMessage() string {
	switch k {
	case FailureTimeout:
		return "Request timeout: Server is taking too long to respond."
	case FailureNetwork:
		return "Network error: Unable to connect to server. Please check your internet connection."
	case FailureMalformed:
		return "Server returned invalid data format. Please try again later."
	default:
		return "Server error: The server could not process the request. Please try again later."
	}
}

// FetchError error tipado del backend remoto: conserva la clase de fallo y el status HTTP (si hubo).
type FetchError struct {
	Kind   FailureKind
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: HTTP %d: %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// NewFetchError construye un FetchError.
func NewFetchError(kind FailureKind, status int, err error) *FetchError {
	return &FetchError{Kind: kind, Status: status, Err: err}
}

// KindOf devuelve la clase de fallo de err; los errores no tipados cuentan como FailureServer.
func KindOf(err error) FailureKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return FailureServer
}
