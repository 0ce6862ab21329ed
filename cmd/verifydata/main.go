// verifydata verifica la conectividad con el almacén de datos y reporta el
// conteo de documentos de cada colección. Código de salida 0 si el almacén
// respondió; 1 ante cualquier fallo de acceso.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/grxsoft/crm-api/internal/application/usecase"
	"github.com/grxsoft/crm-api/internal/infrastructure/postgres"
	"github.com/grxsoft/crm-api/pkg/config"
	"github.com/grxsoft/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: cargar configuración: %v\n", err)
		os.Exit(1)
	}
	logger.New(logger.Config{Env: cfg.App.Env, Level: "warn", Service: "verifydata"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	metricas := usecase.NewMetricasUseCase(postgres.NewMetricasRepository(pool))

	conteos, err := metricas.VerificarColecciones(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: verificar colecciones: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Almacén: %s/%s\n\n", cfg.DB.Host, cfg.DB.DBName)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COLECCIÓN\tDOCUMENTOS\tESTADO")
	vacias := 0
	for _, c := range conteos {
		estado := "OK"
		if !c.TieneDatos {
			estado = "SIN DATOS"
			vacias++
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", c.Coleccion, c.Total, estado)
	}
	w.Flush()

	fmt.Printf("\n%d colecciones verificadas, %d sin datos.\n", len(conteos), vacias)
}
