package sync

import "context"

// CandidateUser es un registro candidato entregado por el proveedor externo,
// ya aplanado desde su JSON anidado (login/name/id).
type CandidateUser struct {
	Username  string
	FirstName string
	LastName  string
	NumericID string // id.value del proveedor; puede venir vacío
	UUID      string // login.uuid, siempre presente
}

// Provider puerto hacia el proveedor externo de usuarios (solo lectura).
type Provider interface {
	// Fetch trae un lote de candidatos. Fallo de red o de parseo debe
	// reportarse envuelto en domain.ErrUpstream.
	Fetch(ctx context.Context, results int) ([]CandidateUser, error)
}
