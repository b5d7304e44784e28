package main

import (
	"context"
	"fmt"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/client"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	"github.com/urfave/cli/v3"
)

// contacto abstrae vendedores y compradores, que comparten campos
type contacto interface {
	models.Vendedor | models.Comprador
}

// comandosContacto arma el árbol CRUD compartido por vendedores y compradores
func comandosContacto[T contacto](nombre, titulo string, recurso func(*app) *client.Recurso[T], fila func(T) []string) *cli.Command {
	flagsDatos := []cli.Flag{
		&cli.StringFlag{Name: "nombre"},
		&cli.StringFlag{Name: "apellido"},
		&cli.StringFlag{Name: "email"},
		&cli.StringFlag{Name: "telefono"},
		&cli.StringFlag{Name: "direccion"},
		&cli.StringFlag{Name: "notas"},
	}
	camposTexto := []string{"nombre", "apellido", "email", "telefono", "direccion", "notas"}

	return &cli.Command{
		Name:  nombre,
		Usage: titulo,
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Listar " + nombre,
				Flags: append(flagsListado(), &cli.StringFlag{Name: "email"}),
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					pagina, err := desenvolver(recurso(a).List(ctx, filtrosDeComando(c, "email")))
					if err != nil {
						return err
					}
					filas := make([][]string, 0, len(pagina.Items))
					for _, item := range pagina.Items {
						filas = append(filas, fila(item))
					}
					imprimirTabla([]string{"ID", "NOMBRE", "EMAIL", "TELEFONO"}, filas)
					imprimirPaginacion(pagina.Paginacion)
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "Ver un registro",
				ArgsUsage: "ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					item, err := desenvolver(recurso(a).GetByID(ctx, c.Args().First()))
					if err != nil {
						return err
					}
					return imprimirJSON(item)
				},
			},
			{
				Name:  "create",
				Usage: "Crear un registro",
				Flags: flagsDatos,
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					datos, err := datosDeFlags(c, camposTexto, nil)
					if err != nil {
						return err
					}
					item, err := desenvolver(recurso(a).Create(ctx, datos))
					if err != nil {
						return err
					}
					filas := fila(item)
					imprimirMensaje(fmt.Sprintf("Registro creado: %s", filas[0]))
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "Actualizar un registro",
				ArgsUsage: "ID",
				Flags:     flagsDatos,
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					datos, err := datosDeFlags(c, camposTexto, nil)
					if err != nil {
						return err
					}
					if _, err := desenvolver(recurso(a).Update(ctx, c.Args().First(), datos)); err != nil {
						return err
					}
					imprimirMensaje("Registro actualizado")
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Dar de baja un registro",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "si", Usage: "confirmar la baja sin preguntar"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if !c.Bool("si") && !confirmar("¿Dar de baja el registro "+c.Args().First()+"?") {
						imprimirMensaje("Baja cancelada")
						return nil
					}
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					if _, err := desenvolver(recurso(a).Remove(ctx, c.Args().First())); err != nil {
						return err
					}
					imprimirMensaje("Registro dado de baja")
					return nil
				},
			},
		},
	}
}

func vendedoresCommand() *cli.Command {
	return comandosContacto("vendedores", "Vendedores de la concesionaria",
		func(a *app) *client.Recurso[models.Vendedor] { return a.vendedores },
		func(v models.Vendedor) []string {
			return []string{v.ID, v.Nombre + " " + v.Apellido, v.Email, v.Telefono}
		})
}

func compradoresCommand() *cli.Command {
	return comandosContacto("compradores", "Compradores registrados",
		func(a *app) *client.Recurso[models.Comprador] { return a.compradores },
		func(c models.Comprador) []string {
			return []string{c.ID, c.Nombre + " " + c.Apellido, c.Email, c.Telefono}
		})
}
