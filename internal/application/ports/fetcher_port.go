package ports

import (
	"context"
	"net/url"
)

// Fetcher define el puerto de salida hacia el backend de automatización (webhooks JSON).
// Los errores deben ser *domain.FetchError para que el llamador conozca la clase de fallo.
// El contexto lleva el timeout de cada recurso.
type Fetcher interface {
	// Get hace GET a endpoint con los parámetros dados y devuelve el cuerpo crudo (solo 2xx).
	Get(ctx context.Context, endpoint string, params url.Values) ([]byte, error)
	// Post envía body como JSON; el cuerpo de la respuesta se ignora.
	Post(ctx context.Context, endpoint string, body any) error
}
