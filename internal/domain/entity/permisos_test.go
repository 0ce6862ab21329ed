package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grxsoft/crm-api/internal/domain/entity"
)

// Caso 1: una entrada ausente en la matriz deniega todas las acciones.
func TestMatrizPermisos_EntradaAusenteDeniega(t *testing.T) {
	m := entity.MatrizPermisos{
		entity.RecursoClientes: {Ver: entity.Flag(true)},
	}

	assert.False(t, m.Permite(entity.RecursoProyectos, entity.AccionVer),
		"recurso sin entrada debe denegar")
	assert.False(t, m.Permite(entity.RecursoProyectos, entity.AccionEliminar))
}

// Caso 2: una entrada parcial solo permite los flags presentes en true.
func TestMatrizPermisos_EntradaParcial(t *testing.T) {
	m := entity.MatrizPermisos{
		entity.RecursoReportes: {Ver: entity.Flag(true)},
	}

	assert.True(t, m.Permite(entity.RecursoReportes, entity.AccionVer))
	assert.False(t, m.Permite(entity.RecursoReportes, entity.AccionCrear),
		"flag ausente debe denegar")
	assert.False(t, m.Permite(entity.RecursoReportes, entity.AccionEditar))
	assert.False(t, m.Permite(entity.RecursoReportes, entity.AccionEliminar))
}

// Caso 3: un flag explícito en false deniega aunque la entrada exista.
func TestMatrizPermisos_FlagFalsoDeniega(t *testing.T) {
	m := entity.MatrizPermisos{
		entity.RecursoClientes: {
			Ver:      entity.Flag(true),
			Eliminar: entity.Flag(false),
		},
	}

	assert.True(t, m.Permite(entity.RecursoClientes, entity.AccionVer))
	assert.False(t, m.Permite(entity.RecursoClientes, entity.AccionEliminar))
}

// Caso 4: una acción desconocida siempre se deniega.
func TestMatrizPermisos_AccionDesconocida(t *testing.T) {
	m := entity.MatrizPermisos{
		entity.RecursoClientes: {Ver: entity.Flag(true)},
	}
	assert.False(t, m.Permite(entity.RecursoClientes, "exportar"))
}

// Caso 5: la matriz del administrador permite todo salvo reportes, que
// solo trae ver.
func TestMatrizAdministrador(t *testing.T) {
	m := entity.MatrizAdministrador()

	for _, r := range entity.Recursos {
		if r == entity.RecursoReportes {
			continue
		}
		assert.True(t, m.Permite(r, entity.AccionVer), r)
		assert.True(t, m.Permite(r, entity.AccionCrear), r)
		assert.True(t, m.Permite(r, entity.AccionEditar), r)
		assert.True(t, m.Permite(r, entity.AccionEliminar), r)
	}

	assert.True(t, m.Permite(entity.RecursoReportes, entity.AccionVer))
	assert.False(t, m.Permite(entity.RecursoReportes, entity.AccionCrear))
	assert.False(t, m.Permite(entity.RecursoReportes, entity.AccionEliminar))
}

// Caso 6: la matriz sobrevive el round-trip JSON (se persiste como JSONB)
// conservando la distinción entre flag ausente y flag en false.
func TestMatrizPermisos_JSONConservaParciales(t *testing.T) {
	original := entity.MatrizPermisos{
		entity.RecursoReportes: {Ver: entity.Flag(true)},
		entity.RecursoTareas:   {Ver: entity.Flag(true), Eliminar: entity.Flag(false)},
	}

	raw, err := json.Marshal(original)
	require.NoError(t, err)

	var decodificada entity.MatrizPermisos
	require.NoError(t, json.Unmarshal(raw, &decodificada))

	assert.True(t, decodificada.Permite(entity.RecursoReportes, entity.AccionVer))
	assert.False(t, decodificada.Permite(entity.RecursoReportes, entity.AccionCrear))
	assert.False(t, decodificada.Permite(entity.RecursoTareas, entity.AccionEliminar))

	p := decodificada[entity.RecursoReportes]
	assert.Nil(t, p.Crear, "flag ausente debe seguir ausente tras el round-trip")
	pt := decodificada[entity.RecursoTareas]
	require.NotNil(t, pt.Eliminar)
	assert.False(t, *pt.Eliminar, "false explícito no debe convertirse en ausente")
}

// Usuario.Puede delega en la matriz.
func TestUsuarioPuede(t *testing.T) {
	u := &entity.Usuario{
		Rol:      entity.RolEstandar,
		Permisos: entity.MatrizPermisos{entity.RecursoTareas: {Ver: entity.Flag(true)}},
	}
	assert.True(t, u.Puede(entity.RecursoTareas, entity.AccionVer))
	assert.False(t, u.Puede(entity.RecursoTareas, entity.AccionCrear))
	assert.False(t, u.Puede(entity.RecursoClientes, entity.AccionVer))
}

func TestEtapaValida(t *testing.T) {
	for _, e := range entity.Etapas {
		assert.True(t, entity.EtapaValida(e))
	}
	assert.False(t, entity.EtapaValida("cerrada"))
	assert.False(t, entity.EtapaValida(""))
}
