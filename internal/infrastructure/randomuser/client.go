// Package randomuser implementa el puerto sync.Provider contra el servicio
// público randomuser.me (o cualquier endpoint compatible configurado).
package randomuser

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jhoicas/Conteo-api/internal/application/sync"
	"github.com/jhoicas/Conteo-api/internal/domain"
)

var _ sync.Provider = (*Client)(nil)

// Client cliente HTTP del proveedor de usuarios candidatos.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. El timeout acota la única llamada de red
// saliente del sistema para que una corrida de sync no quede colgada.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Estructura del JSON del proveedor: campos anidados name/login/id.
type providerResponse struct {
	Results []struct {
		Name struct {
			First string `json:"first"`
			Last  string `json:"last"`
		} `json:"name"`
		Login struct {
			UUID     string `json:"uuid"`
			Username string `json:"username"`
		} `json:"login"`
		ID struct {
			Value string `json:"value"`
		} `json:"id"`
	} `json:"results"`
}

// Fetch trae un lote de candidatos. Cualquier fallo de red, estado HTTP no-2xx
// o JSON malformado se reporta envuelto en domain.ErrUpstream.
func (c *Client) Fetch(ctx context.Context, results int) ([]sync.CandidateUser, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: URL del proveedor: %v", domain.ErrUpstream, err)
	}
	q := u.Query()
	q.Set("results", strconv.Itoa(results))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: construir request: %v", domain.ErrUpstream, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: estado HTTP %d", domain.ErrUpstream, resp.StatusCode)
	}

	var body providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decodificar respuesta: %v", domain.ErrUpstream, err)
	}

	candidates := make([]sync.CandidateUser, 0, len(body.Results))
	for _, r := range body.Results {
		candidates = append(candidates, sync.CandidateUser{
			Username:  r.Login.Username,
			FirstName: r.Name.First,
			LastName:  r.Name.Last,
			NumericID: r.ID.Value,
			UUID:      r.Login.UUID,
		})
	}
	return candidates, nil
}
