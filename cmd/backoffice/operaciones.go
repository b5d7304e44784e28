package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v3"
)

func operacionesCommand() *cli.Command {
	flagsDatos := []cli.Flag{
		&cli.StringFlag{Name: "tipo", Usage: "compra|venta|deposito|traslado"},
		&cli.StringFlag{Name: "vehiculo_id"},
		&cli.StringFlag{Name: "vendedor_id"},
		&cli.StringFlag{Name: "comprador_id"},
		&cli.StringFlag{Name: "monto"},
		&cli.StringFlag{Name: "moneda"},
		&cli.StringFlag{Name: "estado"},
		&cli.StringFlag{Name: "notas"},
		&cli.StringFlag{Name: "extra", Usage: "datos extra del tipo de operación, como JSON"},
	}
	camposTexto := []string{"tipo", "vehiculo_id", "vendedor_id", "comprador_id", "moneda", "estado", "notas"}

	return &cli.Command{
		Name:  "operaciones",
		Usage: "Operaciones comerciales",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Listar operaciones",
				Flags: append(flagsListado(),
					&cli.StringFlag{Name: "tipo"},
					&cli.StringFlag{Name: "vehiculo_id"},
				),
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					pagina, err := desenvolver(a.operaciones.List(ctx, filtrosDeComando(c, "tipo", "vehiculo_id")))
					if err != nil {
						return err
					}
					imprimirOperaciones(pagina)
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "Ver una operación",
				ArgsUsage: "ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					operacion, err := desenvolver(a.operaciones.GetByID(ctx, c.Args().First()))
					if err != nil {
						return err
					}
					return imprimirJSON(operacion)
				},
			},
			{
				Name:  "create",
				Usage: "Registrar una operación",
				Flags: flagsDatos,
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					datos, err := datosDeFlags(c, camposTexto, []string{"monto"})
					if err != nil {
						return err
					}
					if extra := c.String("extra"); extra != "" {
						var bolsa map[string]any
						if err := json.Unmarshal([]byte(extra), &bolsa); err != nil {
							return fmt.Errorf("el flag --extra debe ser JSON válido: %w", err)
						}
						datos["datos_extra"] = bolsa
					}
					operacion, err := desenvolver(a.operaciones.Create(ctx, datos))
					if err != nil {
						return err
					}
					imprimirMensaje(fmt.Sprintf("Operación creada: %s", operacion.ID))
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "Actualizar una operación",
				ArgsUsage: "ID",
				Flags:     flagsDatos,
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					datos, err := datosDeFlags(c, camposTexto, []string{"monto"})
					if err != nil {
						return err
					}
					if extra := c.String("extra"); extra != "" {
						var bolsa map[string]any
						if err := json.Unmarshal([]byte(extra), &bolsa); err != nil {
							return fmt.Errorf("el flag --extra debe ser JSON válido: %w", err)
						}
						datos["datos_extra"] = bolsa
					}
					if _, err := desenvolver(a.operaciones.Update(ctx, c.Args().First(), datos)); err != nil {
						return err
					}
					imprimirMensaje("Operación actualizada")
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Dar de baja una operación",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "si", Usage: "confirmar la baja sin preguntar"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if !c.Bool("si") && !confirmar("¿Dar de baja la operación "+c.Args().First()+"?") {
						imprimirMensaje("Baja cancelada")
						return nil
					}
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					if _, err := desenvolver(a.operaciones.Remove(ctx, c.Args().First())); err != nil {
						return err
					}
					imprimirMensaje("Operación dada de baja")
					return nil
				},
			},
		},
	}
}

func imagenesCommand() *cli.Command {
	return &cli.Command{
		Name:  "imagenes",
		Usage: "Imágenes de vehículos",
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Agregar una imagen a un vehículo",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "vehiculo_id", Required: true},
					&cli.StringFlag{Name: "url", Required: true},
					&cli.StringFlag{Name: "orden"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					datos, err := datosDeFlags(c, []string{"vehiculo_id", "url"}, []string{"orden"})
					if err != nil {
						return err
					}
					imagen, err := desenvolver(a.imagenes.Create(ctx, datos))
					if err != nil {
						return err
					}
					imprimirMensaje(fmt.Sprintf("Imagen agregada: %s", imagen.ID))
					return nil
				},
			},
			{
				Name:      "principal",
				Usage:     "Marcar una imagen como principal",
				ArgsUsage: "ID",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					if _, err := desenvolver(a.imagenes.MarcarPrincipal(ctx, c.Args().First())); err != nil {
						return err
					}
					imprimirMensaje("Imagen marcada como principal")
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "Eliminar una imagen",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "si", Usage: "confirmar la baja sin preguntar"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if !c.Bool("si") && !confirmar("¿Eliminar la imagen "+c.Args().First()+"?") {
						imprimirMensaje("Baja cancelada")
						return nil
					}
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					if _, err := desenvolver(a.imagenes.Remove(ctx, c.Args().First())); err != nil {
						return err
					}
					imprimirMensaje("Imagen eliminada")
					return nil
				},
			},
		},
	}
}
