package randomuser_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Conteo-api/internal/domain"
	"github.com/jhoicas/Conteo-api/internal/infrastructure/randomuser"
)

// Respuesta representativa del proveedor: campos anidados name/login/id, un
// candidato con id.value y otro sin él (null en el JSON real).
const providerFixture = `{
  "results": [
    {
      "name": {"title": "Miss", "first": "Laura", "last": "Pérez"},
      "login": {"uuid": "5a9cbd2e-0001-0002-0003-000400050006", "username": "tinybear204"},
      "id": {"name": "CC", "value": "43210987"}
    },
    {
      "name": {"title": "Mr", "first": "Jorge", "last": "Mora"},
      "login": {"uuid": "deadbeef-aaaa-bbbb-cccc-ddddeeeeffff", "username": "bluefrog519"},
      "id": {"name": "", "value": null}
    }
  ],
  "info": {"results": 2, "page": 1, "version": "1.4"}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *randomuser.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return randomuser.NewClient(server.URL, 5*time.Second)
}

// El cliente pide el tamaño de lote configurado y aplana el JSON anidado.
func TestFetch_ParseaCandidatos(t *testing.T) {
	var gotResults string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotResults = r.URL.Query().Get("results")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(providerFixture))
	})

	candidates, err := client.Fetch(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, "100", gotResults, "el tamaño de lote debe ir en el query string")
	require.Len(t, candidates, 2)

	assert.Equal(t, "tinybear204", candidates[0].Username)
	assert.Equal(t, "Laura", candidates[0].FirstName)
	assert.Equal(t, "Pérez", candidates[0].LastName)
	assert.Equal(t, "43210987", candidates[0].NumericID)
	assert.Equal(t, "5a9cbd2e-0001-0002-0003-000400050006", candidates[0].UUID)

	assert.Empty(t, candidates[1].NumericID, "id.value null debe quedar vacío")
	assert.Equal(t, "deadbeef-aaaa-bbbb-cccc-ddddeeeeffff", candidates[1].UUID)
}

func TestFetch_EstadoNo2xx(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Fetch(context.Background(), 10)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestFetch_JSONMalformado(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	})

	_, err := client.Fetch(context.Background(), 10)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

// Proveedor caído (sin servidor escuchando): error de red envuelto en ErrUpstream.
func TestFetch_ProveedorInalcanzable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close() // cerrado a propósito

	client := randomuser.NewClient(url, time.Second)
	_, err := client.Fetch(context.Background(), 10)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
