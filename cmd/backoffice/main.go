package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:  "backoffice",
		Usage: "Back-office de la concesionaria sobre la API REST",
		Commands: []*cli.Command{
			authCommand(),
			vehiculosCommand(),
			vendedoresCommand(),
			compradoresCommand(),
			operacionesCommand(),
			imagenesCommand(),
			estadosCommand(),
		},
	}

	if err := root.Run(context.Background(), args); err != nil {
		log.Fatal(err)
	}
}

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Sesión contra la API",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Iniciar sesión y obtener un token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					usuario, err := desenvolver(a.auth.Login(ctx, c.String("email"), c.String("password")))
					if err != nil {
						return err
					}
					imprimirLogin(usuario, a.sesion.Token())
					return nil
				},
			},
			{
				Name:  "me",
				Usage: "Mostrar el perfil de la sesión vigente",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					usuario, err := desenvolver(a.auth.Me(ctx))
					if err != nil {
						return err
					}
					imprimirUsuario(usuario)
					return nil
				},
			},
			{
				Name:  "logout",
				Usage: "Cerrar la sesión vigente",
				Action: func(ctx context.Context, c *cli.Command) error {
					a, err := nuevaApp()
					if err != nil {
						return err
					}
					if _, err := desenvolver(a.auth.Logout(ctx)); err != nil {
						return err
					}
					imprimirMensaje("Sesión cerrada")
					return nil
				},
			},
		},
	}
}

func estadosCommand() *cli.Command {
	return &cli.Command{
		Name:  "estados",
		Usage: "Catálogo de estados de vehículos",
		Action: func(ctx context.Context, c *cli.Command) error {
			a, err := nuevaApp()
			if err != nil {
				return err
			}
			estados, err := desenvolver(a.estados.Estados(ctx))
			if err != nil {
				return err
			}
			imprimirEstados(estados)
			return nil
		},
	}
}
