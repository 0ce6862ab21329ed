// listusers imprime todos los usuarios del almacén en una tabla legible.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/infrastructure/postgres"
	"github.com/grxsoft/crm-api/pkg/config"
	"github.com/grxsoft/crm-api/pkg/logger"
)

func main() {
	var (
		empresaID = flag.String("empresa-id", "", "filtrar por empresa (opcional)")
		limit     = flag.Int("limit", 500, "máximo de usuarios a listar")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: cargar configuración: %v\n", err)
		os.Exit(1)
	}
	logger.New(logger.Config{Env: cfg.App.Env, Level: "warn", Service: "listusers"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	usuarios := postgres.NewUsuarioRepository(pool, cfg.DB.Timeout)

	var (
		list []*entity.Usuario
	)
	if *empresaID != "" {
		list, err = usuarios.ListByEmpresa(*empresaID, *limit, 0)
	} else {
		list, err = usuarios.ListAll(*limit, 0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: listar usuarios: %v\n", err)
		os.Exit(1)
	}
	if len(list) == 0 {
		fmt.Println("No hay usuarios registrados.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EMAIL\tNOMBRE\tROL\tACTIVO\tEMPRESA\tRECURSOS CON PERMISO")
	for _, u := range list {
		empresa := "-"
		if u.EmpresaID != nil {
			empresa = *u.EmpresaID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\t%d\n",
			u.Email, u.Nombre, u.Rol, u.Activo, empresa, len(u.Permisos))
	}
	w.Flush()
	fmt.Printf("\nTotal: %d usuarios\n", len(list))
}
