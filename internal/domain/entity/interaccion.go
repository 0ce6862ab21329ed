package entity

import "time"

// Tipos de interacción con un cliente.
const (
	InteraccionLlamada = "llamada"
	InteraccionCorreo  = "correo"
	InteraccionReunion = "reunion"
)

// Interaccion registra un contacto con un cliente (llamada, correo, reunión).
// AdjuntoKey referencia el binario en el object storage; AdjuntoURL es la URL
// pública que guarda la entidad. Al eliminar la interacción se solicita
// también el borrado del adjunto.
type Interaccion struct {
	ID         string
	EmpresaID  string
	ClienteID  string
	UsuarioID  string
	Tipo       string // llamada, correo, reunion
	Notas      string
	Fecha      time.Time
	AdjuntoURL string
	AdjuntoKey string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
