package client

import (
	"context"
	"sync"
)

// MensajeObsoleto es el error con el que se descarta una respuesta vieja.
const MensajeObsoleto = "Resultado descartado: hay filtros más nuevos en vuelo"

// ListaVigilada serializa los refrescos de un listado contra el backend
//
// Cada Refrescar cancela la petición anterior en vuelo y estampa la
// suya con una secuencia; una respuesta que llega cuando ya hay filtros
// más nuevos se descarta en lugar de pisar el resultado vigente. Así el
// listado visible siempre corresponde a los últimos filtros pedidos,
// sin importar el orden en que resuelva la red.
type ListaVigilada[T any] struct {
	recurso *Recurso[T]

	mu       sync.Mutex
	seq      uint64
	cancelar context.CancelFunc
	vigente  Resultado[Pagina[T]]
	filtros  Filtros
	hay      bool
}

// VigilarLista crea una lista vigilada sobre un recurso
func VigilarLista[T any](recurso *Recurso[T]) *ListaVigilada[T] {
	return &ListaVigilada[T]{recurso: recurso}
}

// Refrescar pide el listado con los filtros dados
//
// Bloquea hasta que el backend responda o la petición sea superada por
// un Refrescar más nuevo; en ese caso retorna un Resultado fallido con
// MensajeObsoleto y no toca el resultado vigente.
func (l *ListaVigilada[T]) Refrescar(ctx context.Context, filtros Filtros) Resultado[Pagina[T]] {
	l.mu.Lock()
	l.seq++
	mia := l.seq
	if l.cancelar != nil {
		l.cancelar()
	}
	ctx, cancelar := context.WithCancel(ctx)
	l.cancelar = cancelar
	l.mu.Unlock()
	defer cancelar()

	resultado := l.recurso.List(ctx, filtros)

	l.mu.Lock()
	defer l.mu.Unlock()
	if mia != l.seq {
		return falla[Pagina[T]](MensajeObsoleto)
	}
	l.vigente = resultado
	l.filtros = filtros
	l.hay = true
	return resultado
}

// Vigente retorna el último resultado no descartado y sus filtros
func (l *ListaVigilada[T]) Vigente() (Resultado[Pagina[T]], Filtros, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.vigente, l.filtros, l.hay
}
