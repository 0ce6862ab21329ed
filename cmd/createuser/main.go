// createuser crea un usuario estándar (o administrador) desde la terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/grxsoft/crm-api/internal/application/dto"
	"github.com/grxsoft/crm-api/internal/application/usecase"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/infrastructure/postgres"
	"github.com/grxsoft/crm-api/pkg/config"
	"github.com/grxsoft/crm-api/pkg/logger"
)

func main() {
	var (
		nombre    = flag.String("nombre", "", "nombre del usuario (requerido)")
		email     = flag.String("email", "", "email del usuario (requerido)")
		password  = flag.String("password", "", "password (requerido, mínimo 8 caracteres)")
		rol       = flag.String("rol", entity.RolEstandar, "rol: administrador | estandar")
		empresaID = flag.String("empresa-id", "", "ID de la empresa a la que pertenece")
		telefono  = flag.String("telefono", "", "teléfono (opcional)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: cargar configuración: %v\n", err)
		os.Exit(1)
	}
	logger.New(logger.Config{Env: cfg.App.Env, Level: "warn", Service: "createuser"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	usuarios := postgres.NewUsuarioRepository(pool, cfg.DB.Timeout)

	in := dto.CreateUsuarioRequest{
		Nombre:   *nombre,
		Email:    *email,
		Telefono: *telefono,
		Password: *password,
		Rol:      *rol,
	}
	if *empresaID != "" {
		in.EmpresaID = empresaID
	}
	u, err := usecase.NuevoUsuario(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	if err := usuarios.Create(u); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: crear usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Usuario creado: %s (%s) rol=%s\n", u.Email, u.ID, u.Rol)
	if u.Rol == entity.RolEstandar {
		fmt.Println("Matriz de permisos vacía: asignar permisos con la API antes de usar.")
	}
}
