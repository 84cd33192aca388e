package galaxy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/blankenberg/ephemeris/internal/domain"
)

// defaultTimeout — таймаут одного HTTP-запроса.
const defaultTimeout = 30 * time.Second

// Client — HTTP-клиент для Galaxy API.
//
// Аутентификация — API-ключ в заголовке x-api-key.
// Ключ можно получить из email/password через Authenticate.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient создаёт клиент для инстанса baseURL с данным API-ключом.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Authenticate обменивает email/password на API-ключ.
// Неверные учётные данные — ErrAuthFailed.
func Authenticate(ctx context.Context, baseURL, email, password string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		baseURL+"/api/authenticate/baseauth", nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(email, password)

	httpClient := &http.Client{Timeout: defaultTimeout}
	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("authenticate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", fmt.Errorf("%w: status %d", ErrAuthFailed, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return "", decodeAPIError(resp)
	}

	var body struct {
		APIKey string `json:"api_key"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode auth response: %w", err)
	}
	if body.APIKey == "" {
		return "", ErrAuthFailed
	}
	return body.APIKey, nil
}

// submitRequest — тело запроса на запуск tool'а.
type submitRequest struct {
	ToolID string                `json:"tool_id"`
	Inputs domain.ResolvedInputs `json:"inputs"`
}

// SubmitJob отправляет один data-manager job.
//
// Возвращается сразу после того, как инстанс подтвердил создание job'а;
// сам job выполняется асинхронно. Повторных попыток при ошибке отправки
// нет — ошибка фатальна для батча текущего шага.
func (c *Client) SubmitJob(ctx context.Context, toolID string, inputs domain.ResolvedInputs) (*domain.JobSubmission, error) {
	req := submitRequest{ToolID: toolID, Inputs: inputs}

	var submission domain.JobSubmission
	if err := c.post(ctx, "/api/tools", req, &submission); err != nil {
		return nil, fmt.Errorf("submit tool %s: %w", toolID, err)
	}
	return &submission, nil
}

// datasetResponse — ответ GET /api/datasets/{id}.
type datasetResponse struct {
	ID    string `json:"id"`
	State string `json:"state"`
}

// DatasetState возвращает текущее состояние dataset'а.
func (c *Client) DatasetState(ctx context.Context, datasetID string) (domain.DatasetState, error) {
	var ds datasetResponse
	if err := c.get(ctx, "/api/datasets/"+url.PathEscape(datasetID), &ds); err != nil {
		return "", fmt.Errorf("show dataset %s: %w", datasetID, err)
	}
	return domain.DatasetState(ds.State), nil
}

// DataTable возвращает содержимое tool data table.
// Неизвестная таблица — ErrTableNotFound.
func (c *Client) DataTable(ctx context.Context, name string) (*domain.LookupTable, error) {
	var table domain.LookupTable
	if err := c.get(ctx, "/api/tool_data/"+url.PathEscape(name), &table); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrTableNotFound, name)
		}
		return nil, fmt.Errorf("show data table %s: %w", name, err)
	}
	if table.Name == "" {
		table.Name = name
	}
	return &table, nil
}

// Genomes возвращает список преднастроенных dbkeys инстанса
// в виде пар [описание, dbkey]. Используется как проверка соединения.
func (c *Client) Genomes(ctx context.Context) ([][]string, error) {
	var genomes [][]string
	if err := c.get(ctx, "/api/genomes", &genomes); err != nil {
		return nil, fmt.Errorf("list genomes: %w", err)
	}
	return genomes, nil
}

// --- HTTP helpers ---

func (c *Client) get(ctx context.Context, path string, result any) error {
	return c.do(ctx, http.MethodGet, path, nil, result)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, http.MethodPost, path, body, result)
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// decodeAPIError читает тело ошибочного ответа в APIError.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}

	var body struct {
		ErrMsg string `json:"err_msg"`
	}
	if json.Unmarshal(data, &body) == nil && body.ErrMsg != "" {
		apiErr.Message = body.ErrMsg
	}
	return apiErr
}
