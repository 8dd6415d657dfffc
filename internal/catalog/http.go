package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/matthieukhl/swiftcart/internal/logging"
	"github.com/matthieukhl/swiftcart/internal/models"
	"github.com/matthieukhl/swiftcart/internal/types"
)

// HTTPSource reads the catalog from a fakestoreapi-shaped REST API rooted at
// baseURL (the products collection).
type HTTPSource struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPSource(baseURL string, timeout time.Duration, logger *zap.Logger) (*HTTPSource, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("catalog base URL %q must be absolute", baseURL)
	}

	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logging.OrNop(logger),
	}, nil
}

func (s *HTTPSource) ListCategories(ctx context.Context) ([]string, error) {
	body, err := s.get(ctx, OpCategories, s.baseURL+"/categories")
	if err != nil {
		return nil, err
	}
	return decodeList[string](body, s.logger, OpCategories), nil
}

func (s *HTTPSource) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	endpoint := s.baseURL
	if category != models.CategoryAll {
		endpoint = s.baseURL + "/category/" + url.PathEscape(category)
	}

	body, err := s.get(ctx, OpProducts, endpoint)
	if err != nil {
		return nil, err
	}
	return decodeList[models.Product](body, s.logger, OpProducts), nil
}

func (s *HTTPSource) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	body, err := s.get(ctx, OpProduct, s.baseURL+"/"+strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}

	// The API answers unknown ids with 200 and an empty body
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("product %d: %w", id, ErrProductNotFound)
	}

	var product models.Product
	if err := json.Unmarshal(trimmed, &product); err != nil {
		return nil, fmt.Errorf("failed to decode product %d: %w", id, err)
	}
	return &product, nil
}

func (s *HTTPSource) Name() string {
	return "http"
}

func (s *HTTPSource) get(ctx context.Context, op Op, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Op: op, URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		fe := &FetchError{Op: op, URL: endpoint, Err: err}
		s.logger.Warn("catalog request failed", zap.String("detail", fe.Detail()))
		return nil, fe
	}
	defer resp.Body.Close()

	s.logger.Debug("catalog request",
		zap.String("op", string(op)),
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		fe := &FetchError{Op: op, URL: endpoint, Status: resp.StatusCode}
		s.logger.Warn("catalog request failed", zap.String("detail", fe.Detail()))
		return nil, fe
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Op: op, URL: endpoint, Status: resp.StatusCode, Err: err}
	}
	return body, nil
}

// decodeList decodes a JSON array body. Anything that is not a decodable
// array yields an empty slice rather than an error.
func decodeList[T any](body []byte, logger *zap.Logger, op Op) []T {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		logger.Debug("non-array catalog payload treated as empty", zap.String("op", string(op)))
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		logger.Debug("malformed catalog payload treated as empty", zap.String("op", string(op)), zap.Error(err))
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// Compile-time interface check
var _ types.CatalogSource = (*HTTPSource)(nil)
