package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/grxsoft/crm-api/internal/domain"
	"github.com/grxsoft/crm-api/internal/domain/entity"
	"github.com/grxsoft/crm-api/internal/domain/repository"
	"github.com/grxsoft/crm-api/internal/infrastructure/export"
)

// Tope de filas por hoja exportada.
const limiteExport = 10000

// ExportUseCase genera las descargas de reportes: hojas de cálculo por
// colección y el resumen ejecutivo en PDF. El permiso exigido para exportar
// una colección es el mismo ver de esa colección en la matriz.
type ExportUseCase struct {
	clientes      repository.ClienteRepository
	proyectos     repository.ProyectoRepository
	oportunidades repository.OportunidadRepository
	tareas        repository.TareaRepository
	productos     repository.ProductoRepository
	usuarios      repository.UsuarioRepository
	interacciones repository.InteraccionRepository
	empresas      repository.EmpresaRepository
	metricas      repository.MetricasRepository
	hojas         ExportadorHojas
	pdf           GeneradorResumenPDF
}

// ExportDeps dependencias del caso de uso de exportación.
type ExportDeps struct {
	Clientes      repository.ClienteRepository
	Proyectos     repository.ProyectoRepository
	Oportunidades repository.OportunidadRepository
	Tareas        repository.TareaRepository
	Productos     repository.ProductoRepository
	Usuarios      repository.UsuarioRepository
	Interacciones repository.InteraccionRepository
	Empresas      repository.EmpresaRepository
	Metricas      repository.MetricasRepository
	Hojas         ExportadorHojas
	PDF           GeneradorResumenPDF
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(d ExportDeps) *ExportUseCase {
	return &ExportUseCase{
		clientes:      d.Clientes,
		proyectos:     d.Proyectos,
		oportunidades: d.Oportunidades,
		tareas:        d.Tareas,
		productos:     d.Productos,
		usuarios:      d.Usuarios,
		interacciones: d.Interacciones,
		empresas:      d.Empresas,
		metricas:      d.Metricas,
		hojas:         d.Hojas,
		pdf:           d.PDF,
	}
}

// Exportar genera el .xlsx de una colección de la empresa del actor.
// Devuelve el binario y el nombre de archivo sugerido.
func (uc *ExportUseCase) Exportar(actor *entity.Usuario, coleccion string) ([]byte, string, error) {
	recurso, ok := recursoDeColeccion(coleccion)
	if !ok {
		return nil, "", domain.NewValidationError("export", "coleccion", "colección no exportable")
	}
	if err := autorizar(actor, recurso, entity.AccionVer); err != nil {
		return nil, "", err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, "", err
	}
	hoja, err := uc.hojaDe(coleccion, empresaID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.hojas.Generar(*hoja)
	if err != nil {
		return nil, "", err
	}
	nombre := fmt.Sprintf("%s-%s.xlsx", coleccion, time.Now().Format("20060102"))
	return data, nombre, nil
}

// ResumenPDF genera el resumen ejecutivo en PDF de la empresa del actor:
// pipeline por etapa y conteos por colección. Requiere reportes.ver.
func (uc *ExportUseCase) ResumenPDF(ctx context.Context, actor *entity.Usuario) ([]byte, string, error) {
	if err := autorizar(actor, entity.RecursoReportes, entity.AccionVer); err != nil {
		return nil, "", err
	}
	empresaID, err := empresaDe(actor)
	if err != nil {
		return nil, "", err
	}
	empresa, err := uc.empresas.GetByID(empresaID)
	if err != nil {
		return nil, "", err
	}
	nombreEmpresa := empresaID
	if empresa != nil {
		nombreEmpresa = empresa.Nombre
	}
	etapas, err := uc.metricas.PipelinePorEtapa(ctx, empresaID)
	if err != nil {
		return nil, "", err
	}
	conteos, err := uc.metricas.CountCollections(ctx, empresaID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.GenerarResumen(ctx, nombreEmpresa, etapas, conteos)
	if err != nil {
		return nil, "", err
	}
	nombre := fmt.Sprintf("resumen-%s.pdf", time.Now().Format("20060102"))
	return data, nombre, nil
}

// recursoDeColeccion mapea una colección exportable a su recurso en la
// matriz de permisos. Las interacciones se gobiernan con clientes.
func recursoDeColeccion(coleccion string) (string, bool) {
	switch coleccion {
	case "clientes", "interacciones":
		return entity.RecursoClientes, true
	case "proyectos":
		return entity.RecursoProyectos, true
	case "oportunidades":
		return entity.RecursoOportunidades, true
	case "tareas":
		return entity.RecursoTareas, true
	case "productos":
		return entity.RecursoProductos, true
	case "usuarios":
		return entity.RecursoUsuarios, true
	}
	return "", false
}

func (uc *ExportUseCase) hojaDe(coleccion, empresaID string) (*export.Hoja, error) {
	switch coleccion {
	case "clientes":
		list, err := uc.clientes.ListByEmpresa(empresaID, limiteExport, 0)
		if err != nil {
			return nil, err
		}
		h := &export.Hoja{
			Nombre:      "Clientes",
			Encabezados: []string{"ID", "Nombre", "Email", "Teléfono", "Ciudad", "Activo", "Creado"},
		}
		for _, c := range list {
			h.Filas = append(h.Filas, []any{
				c.ID, c.Nombre, c.Email, c.Telefono, c.Ciudad, c.Activo, fechaCelda(c.CreatedAt),
			})
		}
		return h, nil
	case "proyectos":
		list, err := uc.proyectos.ListByEmpresa(empresaID, limiteExport, 0)
		if err != nil {
			return nil, err
		}
		h := &export.Hoja{
			Nombre:      "Proyectos",
			Encabezados: []string{"ID", "Cliente", "Nombre", "Estado", "Inicio", "Fin", "Creado"},
		}
		for _, p := range list {
			h.Filas = append(h.Filas, []any{
				p.ID, p.ClienteID, p.Nombre, p.Estado,
				fechaOpcionalCelda(p.FechaInicio), fechaOpcionalCelda(p.FechaFin), fechaCelda(p.CreatedAt),
			})
		}
		return h, nil
	case "oportunidades":
		list, err := uc.oportunidades.ListByEmpresa(empresaID, limiteExport, 0)
		if err != nil {
			return nil, err
		}
		h := &export.Hoja{
			Nombre:      "Oportunidades",
			Encabezados: []string{"ID", "Cliente", "Nombre", "Etapa", "Valor", "Probabilidad", "Cierre"},
		}
		for _, o := range list {
			h.Filas = append(h.Filas, []any{
				o.ID, o.ClienteID, o.Nombre, o.Etapa, o.Valor.String(), o.Probabilidad,
				fechaOpcionalCelda(o.FechaCierre),
			})
		}
		return h, nil
	case "tareas":
		list, err := uc.tareas.ListByEmpresa(empresaID, limiteExport, 0)
		if err != nil {
			return nil, err
		}
		h := &export.Hoja{
			Nombre:      "Tareas",
			Encabezados: []string{"ID", "Usuario", "Título", "Estado", "Prioridad", "Vence", "Creado"},
		}
		for _, t := range list {
			h.Filas = append(h.Filas, []any{
				t.ID, t.UsuarioID, t.Titulo, t.Estado, t.Prioridad,
				fechaOpcionalCelda(t.FechaVencimiento), fechaCelda(t.CreatedAt),
			})
		}
		return h, nil
	case "productos":
		list, err := uc.productos.ListByEmpresa(empresaID, limiteExport, 0)
		if err != nil {
			return nil, err
		}
		h := &export.Hoja{
			Nombre:      "Productos",
			Encabezados: []string{"ID", "Nombre", "SKU", "Precio", "Activo", "Creado"},
		}
		for _, p := range list {
			h.Filas = append(h.Filas, []any{
				p.ID, p.Nombre, p.SKU, p.Precio.String(), p.Activo, fechaCelda(p.CreatedAt),
			})
		}
		return h, nil
	case "usuarios":
		list, err := uc.usuarios.ListByEmpresa(empresaID, limiteExport, 0)
		if err != nil {
			return nil, err
		}
		h := &export.Hoja{
			Nombre:      "Usuarios",
			Encabezados: []string{"ID", "Nombre", "Email", "Rol", "Activo", "Creado"},
		}
		for _, u := range list {
			h.Filas = append(h.Filas, []any{
				u.ID, u.Nombre, u.Email, u.Rol, u.Activo, fechaCelda(u.CreatedAt),
			})
		}
		return h, nil
	case "interacciones":
		list, err := uc.interacciones.ListByEmpresa(empresaID, limiteExport, 0)
		if err != nil {
			return nil, err
		}
		h := &export.Hoja{
			Nombre:      "Interacciones",
			Encabezados: []string{"ID", "Cliente", "Usuario", "Tipo", "Notas", "Fecha"},
		}
		for _, i := range list {
			h.Filas = append(h.Filas, []any{
				i.ID, i.ClienteID, i.UsuarioID, i.Tipo, i.Notas, fechaCelda(i.Fecha),
			})
		}
		return h, nil
	}
	return nil, domain.NewValidationError("export", "coleccion", "colección no exportable")
}

func fechaCelda(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

func fechaOpcionalCelda(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fechaCelda(*t)
}
