package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/client"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/config"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/session"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/transport"
	"github.com/sirupsen/logrus"
)

// app agrupa la sesión y los clientes de recursos del back-office
type app struct {
	cfg    *config.Config
	logger *logrus.Logger
	sesion *session.Store

	auth        *client.Auth
	vehiculos   *client.Vehiculos
	vendedores  *client.Recurso[models.Vendedor]
	compradores *client.Recurso[models.Comprador]
	operaciones *client.Recurso[models.Operacion]
	imagenes    *client.Imagenes
	estados     *client.CatalogoEstados
}

func nuevaApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.WarnLevel
	}
	logger.SetLevel(level)

	sesion := session.NuevoConToken(cfg.API.Token)

	t := transport.NuevoCliente(cfg.API.BaseURL, cfg.API.Timeout, sesion.Token, logger)
	t.AlExpirarSesion(sesion.Limpiar)

	return &app{
		cfg:         cfg,
		logger:      logger,
		sesion:      sesion,
		auth:        client.NuevoAuth(t, sesion, logger),
		vehiculos:   client.NuevoVehiculos(t, logger),
		vendedores:  client.NuevoVendedores(t, logger),
		compradores: client.NuevoCompradores(t, logger),
		operaciones: client.NuevoOperaciones(t, logger),
		imagenes:    client.NuevoImagenes(t, logger),
		estados:     client.NuevoCatalogoEstados(t, cfg.API.EstadosTTL),
	}, nil
}

// desenvolver convierte un Resultado fallido en un error de comando
func desenvolver[T any](res client.Resultado[T]) (T, error) {
	if res.Success {
		return res.Data, nil
	}
	if len(res.Errores) > 0 {
		return res.Data, errors.New(strings.Join(res.Errores, "\n"))
	}
	if res.Clase == transport.ClaseAuthExpired {
		return res.Data, fmt.Errorf("%s (exportá un BACKOFFICE_TOKEN nuevo con `backoffice login`)", res.Error)
	}
	return res.Data, errors.New(res.Error)
}
