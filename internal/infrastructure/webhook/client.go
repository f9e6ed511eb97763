package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/smart-distribution/internal/application/ports"
	"github.com/jhoicas/smart-distribution/internal/domain"
	"github.com/jhoicas/smart-distribution/pkg/logger"
)

var _ ports.Fetcher = (*Client)(nil)

// maxBodyBytes tope de lectura de una respuesta del backend.
const maxBodyBytes = 4 << 20

// Client adaptador HTTP hacia los webhooks del backend de automatización.
// Todos los errores que devuelve son *domain.FetchError.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. timeout es el tope absoluto por request; cada llamada
// puede acotarlo más vía contexto.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.Named("webhook"),
	}
}

// Get hace GET baseURL+endpoint?params y devuelve el cuerpo de una respuesta 2xx.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	target := c.baseURL + endpoint
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, domain.NewFetchError(domain.FailureNetwork, 0, fmt.Errorf("webhook: crear request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	return c.do(ctx, req)
}

// Post envía body como JSON. Solo un 2xx cuenta como éxito; el cuerpo de la respuesta se ignora.
func (c *Client) Post(ctx context.Context, endpoint string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return domain.NewFetchError(domain.FailureMalformed, 0, fmt.Errorf("webhook: serializar body: %w", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.NewFetchError(domain.FailureNetwork, 0, fmt.Errorf("webhook: crear request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	_, err = c.do(ctx, req)
	return err
}

func (c *Client) do(ctx context.Context, req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		kind := classifyTransport(ctx, err)
		c.log.Warn().Err(err).Str("method", req.Method).Str("path", req.URL.Path).Str("kind", string(kind)).Msg("webhook sin respuesta")
		return nil, domain.NewFetchError(kind, 0, fmt.Errorf("webhook: %s %s: %w", req.Method, req.URL.Path, err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		kind := classifyTransport(ctx, err)
		return nil, domain.NewFetchError(kind, resp.StatusCode, fmt.Errorf("webhook: leer respuesta: %w", err))
	}

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("webhook")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewFetchError(domain.FailureServer, resp.StatusCode,
			fmt.Errorf("webhook: %s %s: HTTP %d: %s", req.Method, req.URL.Path, resp.StatusCode, snippet(raw)))
	}
	return raw, nil
}

// classifyTransport distingue timeout/cancelación de fallos de red.
func classifyTransport(ctx context.Context, err error) domain.FailureKind {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.FailureTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return domain.FailureTimeout
	}
	return domain.FailureNetwork
}

func snippet(b []byte) string {
	const max = 200
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
