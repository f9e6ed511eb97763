package ports

import "time"

// Scheduler ejecuta un trabajo periódico. stop cancela el trabajo; después de que stop
// retorna no se inician nuevas ejecuciones.
type Scheduler interface {
	Every(interval time.Duration, job func()) (stop func(), err error)
}
