package main

import (
	"context"
	"fmt"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/client"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	"github.com/urfave/cli/v3"
)

func vehiculosCommand() *cli.Command {
	return &cli.Command{
		Name:  "vehiculos",
		Usage: "Inventario de vehículos",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Listar vehículos con filtros",
				Flags: append(flagsListado(),
					&cli.StringFlag{Name: "marca"},
					&cli.StringFlag{Name: "estado"},
					&cli.StringFlag{Name: "vendedor_id"},
				),
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}

					filtros := filtrosDeComando(c, "marca", "estado", "vendedor_id")
					lista := client.VigilarLista(a.vehiculos.Recurso)

					// El listado y el catálogo de estados se piden en
					// paralelo; si el catálogo falla igual se muestra
					// la tabla.
					var pagina client.Pagina[models.Vehiculo]
					var estados []models.EstadoVehiculo
					errores := client.EnParalelo(ctx,
						func(ctx context.Context) error {
							resultado, err := desenvolver(lista.Refrescar(ctx, filtros))
							if err != nil {
								return err
							}
							pagina = resultado
							return nil
						},
						func(ctx context.Context) error {
							resultado, err := desenvolver(a.estados.Estados(ctx))
							if err != nil {
								return err
							}
							estados = resultado
							return nil
						},
					)
					if errores[0] != nil {
						return errores[0]
					}
					if errores[1] != nil {
						a.logger.WithError(errores[1]).Warn("No se pudo cargar el catálogo de estados")
					}

					imprimirVehiculos(pagina, estados)
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "Ver un vehículo",
				ArgsUsage: "ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					vehiculo, err := desenvolver(a.vehiculos.GetByID(ctx, c.Args().First()))
					if err != nil {
						return err
					}
					imprimirVehiculo(vehiculo)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Dar de alta un vehículo",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "anio", Required: true},
					&cli.StringFlag{Name: "patente"},
					&cli.StringFlag{Name: "kilometraje"},
					&cli.StringFlag{Name: "valor"},
					&cli.StringFlag{Name: "moneda"},
					&cli.StringFlag{Name: "estado"},
					&cli.StringFlag{Name: "vendedor_id"},
					&cli.StringFlag{Name: "observaciones"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					datos, err := datosDeFlags(c,
						[]string{"patente", "moneda", "estado", "vendedor_id", "observaciones"},
						[]string{"anio", "kilometraje", "valor"})
					if err != nil {
						return err
					}
					vehiculo, err := desenvolver(a.vehiculos.Create(ctx, datos))
					if err != nil {
						return err
					}
					imprimirMensaje(fmt.Sprintf("Vehículo creado: %s", vehiculo.ID))
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "Actualizar campos de un vehículo",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "anio"},
					&cli.StringFlag{Name: "patente"},
					&cli.StringFlag{Name: "kilometraje"},
					&cli.StringFlag{Name: "valor"},
					&cli.StringFlag{Name: "moneda"},
					&cli.StringFlag{Name: "estado"},
					&cli.StringFlag{Name: "vendedor_id"},
					&cli.StringFlag{Name: "comprador_id"},
					&cli.StringFlag{Name: "observaciones"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					datos, err := datosDeFlags(c,
						[]string{"patente", "moneda", "estado", "vendedor_id", "comprador_id", "observaciones"},
						[]string{"anio", "kilometraje", "valor"})
					if err != nil {
						return err
					}
					if _, err := desenvolver(a.vehiculos.Update(ctx, c.Args().First(), datos)); err != nil {
						return err
					}
					imprimirMensaje("Vehículo actualizado")
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Dar de baja un vehículo",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "si", Usage: "confirmar la baja sin preguntar"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if !c.Bool("si") && !confirmar("¿Dar de baja el vehículo "+c.Args().First()+"?") {
						imprimirMensaje("Baja cancelada")
						return nil
					}
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					if _, err := desenvolver(a.vehiculos.Remove(ctx, c.Args().First())); err != nil {
						return err
					}
					imprimirMensaje("Vehículo dado de baja")
					return nil
				},
			},
			{
				Name:      "imagenes",
				Usage:     "Listar las imágenes de un vehículo",
				ArgsUsage: "ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					imagenes, err := desenvolver(a.vehiculos.Imagenes(ctx, c.Args().First()))
					if err != nil {
						return err
					}
					imprimirImagenes(imagenes)
					return nil
				},
			},
			{
				Name:      "publicaciones",
				Usage:     "Listar las publicaciones de un vehículo",
				ArgsUsage: "ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					publicaciones, err := desenvolver(a.vehiculos.Publicaciones(ctx, c.Args().First()))
					if err != nil {
						return err
					}
					imprimirPublicaciones(publicaciones)
					return nil
				},
			},
			{
				Name:      "publicar",
				Usage:     "Publicar un vehículo en una plataforma",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "plataforma", Required: true},
					&cli.StringFlag{Name: "titulo", Required: true},
					&cli.StringFlag{Name: "url"},
					&cli.StringFlag{Name: "descripcion"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					datos, err := datosDeFlags(c,
						[]string{"plataforma", "titulo", "url", "descripcion"}, nil)
					if err != nil {
						return err
					}
					publicacion, err := desenvolver(a.vehiculos.Publicar(ctx, c.Args().First(), datos))
					if err != nil {
						return err
					}
					imprimirMensaje(fmt.Sprintf("Publicación creada: %s", publicacion.ID))
					return nil
				},
			},
		},
	}
}
