package repository

import "context"

// KeyValueStore define el puerto de almacenamiento durable del dispositivo (equivalente al
// localStorage del navegador). Gana el último que escribe.
type KeyValueStore interface {
	// Get devuelve el valor y si la clave existe.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
