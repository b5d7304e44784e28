package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/client"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/normalize"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/states"
	"github.com/urfave/cli/v3"
)

// flagsListado arma los flags comunes de paginación y orden
func flagsListado() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "page"},
		&cli.StringFlag{Name: "limit"},
		&cli.StringFlag{Name: "orderBy"},
		&cli.StringFlag{Name: "order"},
	}
}

// filtrosDeComando junta los filtros seteados en el comando
//
// Sólo los flags presentes terminan en el mapa; los defaults de
// paginación los inyecta el cliente de recursos.
func filtrosDeComando(c *cli.Command, claves ...string) client.Filtros {
	filtros := client.Filtros{}
	for _, clave := range append([]string{"page", "limit", "orderBy", "order"}, claves...) {
		if valor := c.String(clave); valor != "" {
			filtros[clave] = valor
		}
	}
	return filtros
}

// datosDeFlags arma el payload parcial a partir de los flags seteados
func datosDeFlags(c *cli.Command, textos, numeros []string) (client.Datos, error) {
	datos := client.Datos{}
	for _, campo := range textos {
		if valor := c.String(campo); valor != "" {
			datos[campo] = valor
		}
	}
	for _, campo := range numeros {
		valor := c.String(campo)
		if valor == "" {
			continue
		}
		numero, err := strconv.ParseFloat(valor, 64)
		if err != nil {
			return nil, fmt.Errorf("el flag --%s debe ser numérico: %q", campo, valor)
		}
		datos[campo] = numero
	}
	return datos, nil
}

// confirmar pide confirmación por consola antes de una baja
func confirmar(pregunta string) bool {
	fmt.Printf("%s [s/N]: ", pregunta)
	lector := bufio.NewReader(os.Stdin)
	linea, err := lector.ReadString('\n')
	if err != nil {
		return false
	}
	respuesta := strings.ToLower(strings.TrimSpace(linea))
	return respuesta == "s" || respuesta == "si"
}

func imprimirJSON(v any) error {
	datos, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(datos))
	return nil
}

func imprimirMensaje(mensaje string) {
	fmt.Println(mensaje)
}

func imprimirTabla(encabezados []string, filas [][]string) {
	if len(filas) == 0 {
		fmt.Println("sin resultados")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(encabezados, "\t"))
	for _, fila := range filas {
		_, _ = fmt.Fprintln(w, strings.Join(fila, "\t"))
	}
	_ = w.Flush()
}

func imprimirPaginacion(p models.Paginacion) {
	fmt.Printf("página %d de %d (%d registros)\n", p.Page, p.Pages, p.Total)
}

func imprimirVehiculos(pagina client.Pagina[models.Vehiculo], estados []models.EstadoVehiculo) {
	etiquetas := make(map[string]string, len(estados))
	for _, estado := range estados {
		etiquetas[estado.Codigo] = estado.Etiqueta
	}

	filas := make([][]string, 0, len(pagina.Items))
	for _, vehiculo := range pagina.Items {
		vista := normalize.DeVehiculo(vehiculo)
		info := describirEstado(vista.Estado)
		etiqueta := info.Etiqueta
		if catalogo, ok := etiquetas[info.Codigo]; ok {
			etiqueta = catalogo
		}
		filas = append(filas, []string{
			vehiculo.ID,
			vista.Marca.Mostrar(),
			vista.Modelo.Mostrar(),
			vista.Anio.Mostrar(),
			vista.Patente.Mostrar(),
			vista.Valor.Mostrar() + " " + vista.Moneda.Mostrar(),
			etiqueta,
		})
	}
	imprimirTabla([]string{"ID", "MARCA", "MODELO", "AÑO", "PATENTE", "VALOR", "ESTADO"}, filas)
	imprimirPaginacion(pagina.Paginacion)
}

func imprimirVehiculo(vehiculo models.Vehiculo) {
	vista := normalize.DeVehiculo(vehiculo)
	info := describirEstado(vista.Estado)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	filas := [][2]string{
		{"id", vehiculo.ID},
		{"marca", vista.Marca.Mostrar()},
		{"modelo", vista.Modelo.Mostrar()},
		{"versión", vista.Version.Mostrar()},
		{"año", vista.Anio.Mostrar()},
		{"patente", vista.Patente.Mostrar()},
		{"kilometraje", vista.Kilometraje.Mostrar()},
		{"valor", vista.Valor.Mostrar() + " " + vista.Moneda.Mostrar()},
		{"estado", info.Etiqueta},
		{"observaciones", vehiculo.Observaciones},
	}
	for _, fila := range filas {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", fila[0], fila[1])
	}
	_ = w.Flush()
}

// describirEstado pasa el Dato reconciliado al mapeo de presentación
func describirEstado(estado normalize.Dato) states.Info {
	if !estado.Presente {
		return states.Describir(nil)
	}
	if estado.EsNumero {
		return states.Describir(int(estado.Numero))
	}
	return states.Describir(estado.Texto)
}

func imprimirOperaciones(pagina client.Pagina[models.Operacion]) {
	filas := make([][]string, 0, len(pagina.Items))
	for _, operacion := range pagina.Items {
		filas = append(filas, []string{
			operacion.ID,
			string(operacion.Tipo),
			operacion.VehiculoID,
			strconv.FormatFloat(operacion.Monto, 'f', -1, 64) + " " + string(operacion.Moneda),
			operacion.Estado,
		})
	}
	imprimirTabla([]string{"ID", "TIPO", "VEHICULO", "MONTO", "ESTADO"}, filas)
	imprimirPaginacion(pagina.Paginacion)
}

func imprimirImagenes(imagenes []models.Imagen) {
	filas := make([][]string, 0, len(imagenes))
	for _, imagen := range imagenes {
		principal := ""
		if imagen.EsPrincipal {
			principal = "principal"
		}
		filas = append(filas, []string{
			imagen.ID,
			strconv.Itoa(imagen.Orden),
			imagen.URL,
			principal,
		})
	}
	imprimirTabla([]string{"ID", "ORDEN", "URL", ""}, filas)
}

func imprimirPublicaciones(publicaciones []models.Publicacion) {
	filas := make([][]string, 0, len(publicaciones))
	for _, publicacion := range publicaciones {
		activa := "inactiva"
		if publicacion.Activa {
			activa = "activa"
		}
		filas = append(filas, []string{
			publicacion.ID,
			string(publicacion.Plataforma),
			publicacion.Titulo,
			activa,
		})
	}
	imprimirTabla([]string{"ID", "PLATAFORMA", "TITULO", "ESTADO"}, filas)
}

func imprimirEstados(estados []models.EstadoVehiculo) {
	filas := make([][]string, 0, len(estados))
	for _, estado := range estados {
		info := states.Describir(estado.Codigo)
		filas = append(filas, []string{estado.Codigo, estado.Etiqueta, info.Color})
	}
	imprimirTabla([]string{"CODIGO", "ETIQUETA", "COLOR"}, filas)
}

func imprimirUsuario(usuario models.Usuario) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "email\t%s\n", usuario.Email)
	_, _ = fmt.Fprintf(w, "nombre\t%s\n", usuario.Nombre)
	_, _ = fmt.Fprintf(w, "rol\t%s\n", usuario.Rol)
	_ = w.Flush()
}

func imprimirLogin(usuario models.Usuario, token string) {
	fmt.Printf("Sesión iniciada como %s (%s)\n", usuario.Email, usuario.Rol)
	fmt.Println("Para usar el token en esta terminal:")
	fmt.Printf("  export BACKOFFICE_TOKEN=%s\n", token)
}
