package client

import (
	"context"
	"sync"
)

// EnParalelo ejecuta las tareas concurrentemente y junta los errores
//
// Cada tarea captura su propio resultado por clausura. La falla de una
// no aborta ni descarta a las demás: el slice retornado trae el error
// de cada posición, nil donde la tarea terminó bien.
func EnParalelo(ctx context.Context, tareas ...func(context.Context) error) []error {
	errores := make([]error, len(tareas))

	var wg sync.WaitGroup
	for i, tarea := range tareas {
		wg.Add(1)
		go func(i int, tarea func(context.Context) error) {
			defer wg.Done()
			errores[i] = tarea(ctx)
		}(i, tarea)
	}
	wg.Wait()

	return errores
}
