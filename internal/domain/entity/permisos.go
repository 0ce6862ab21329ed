package entity

// Acciones CRUD de la matriz de permisos.
const (
	AccionVer      = "ver"
	AccionCrear    = "crear"
	AccionEditar   = "editar"
	AccionEliminar = "eliminar"
)

// Tipos de recurso que expone la aplicación (claves de la matriz).
const (
	RecursoEmpresas      = "empresas"
	RecursoUsuarios      = "usuarios"
	RecursoClientes      = "clientes"
	RecursoProyectos     = "proyectos"
	RecursoOportunidades = "oportunidades"
	RecursoTareas        = "tareas"
	RecursoProductos     = "productos"
	RecursoReportes      = "reportes"
)

// Recursos lista todos los tipos de recurso conocidos.
var Recursos = []string{
	RecursoEmpresas, RecursoUsuarios, RecursoClientes, RecursoProyectos,
	RecursoOportunidades, RecursoTareas, RecursoProductos, RecursoReportes,
}

// PermisoRecurso son los flags CRUD de un recurso. Los punteros permiten
// entradas parciales (ej. reportes solo trae Ver); un flag ausente deniega.
type PermisoRecurso struct {
	Ver      *bool `json:"ver,omitempty"`
	Crear    *bool `json:"crear,omitempty"`
	Editar   *bool `json:"editar,omitempty"`
	Eliminar *bool `json:"eliminar,omitempty"`
}

// MatrizPermisos mapea tipo de recurso -> flags CRUD. Se persiste como JSONB
// en la columna permisos de usuarios. Una entrada ausente deniega todo.
type MatrizPermisos map[string]PermisoRecurso

// Permite decide allow/deny para (recurso, acción): entrada ausente o flag
// ausente deniegan; si el flag existe se devuelve exactamente su valor.
func (m MatrizPermisos) Permite(recurso, accion string) bool {
	p, ok := m[recurso]
	if !ok {
		return false
	}
	var flag *bool
	switch accion {
	case AccionVer:
		flag = p.Ver
	case AccionCrear:
		flag = p.Crear
	case AccionEditar:
		flag = p.Editar
	case AccionEliminar:
		flag = p.Eliminar
	default:
		return false
	}
	if flag == nil {
		return false
	}
	return *flag
}

// Flag es un helper para construir matrices literal: Flag(true) -> *bool.
func Flag(v bool) *bool { return &v }

// MatrizAdministrador es la convención de aprovisionamiento para el rol
// administrador: todos los flags en true salvo reportes, que solo trae ver.
func MatrizAdministrador() MatrizPermisos {
	m := MatrizPermisos{}
	for _, r := range Recursos {
		if r == RecursoReportes {
			m[r] = PermisoRecurso{Ver: Flag(true)}
			continue
		}
		m[r] = PermisoRecurso{
			Ver:      Flag(true),
			Crear:    Flag(true),
			Editar:   Flag(true),
			Eliminar: Flag(true),
		}
	}
	return m
}
