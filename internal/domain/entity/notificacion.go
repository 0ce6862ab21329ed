package entity

import "time"

// Notificacion es un aviso dirigido a un usuario de la empresa.
type Notificacion struct {
	ID        string
	EmpresaID string
	UsuarioID string
	Titulo    string
	Mensaje   string
	Leida     bool
	CreatedAt time.Time
}
