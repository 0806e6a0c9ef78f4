package apiclient

import (
	"Agrilink/internal/api/config"
	"Agrilink/internal/api/dto"
	"Agrilink/internal/pkg/logger"
	"Agrilink/internal/pkg/session"
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// Client REST API 客户端. The bearer token is taken from the request context
// (session.WithCredential); the client itself holds no credential.
type Client struct {
	http *resty.Client
}

func New(cfg config.APIConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetTransport(&logger.HTTPTransport{Transport: http.DefaultTransport})
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		ctx := r.Context()
		if cred, ok := session.CredentialFrom(ctx); ok {
			r.SetAuthToken(cred.Token)
		}
		if traceID := logger.TraceID(ctx); traceID != "" {
			r.SetHeader("X-Trace-ID", traceID)
		}
		return nil
	})

	return &Client{http: client}
}

// Get 查询; query may be nil
func (s *Client) Get(ctx context.Context, path string, query map[string]string, out any) error {
	r := s.http.R().SetContext(ctx)
	if query != nil {
		r.SetQueryParams(query)
	}
	return s.execute(r, http.MethodGet, path, out)
}

func (s *Client) Post(ctx context.Context, path string, body, out any) error {
	return s.send(ctx, http.MethodPost, path, body, out)
}

func (s *Client) Patch(ctx context.Context, path string, body, out any) error {
	return s.send(ctx, http.MethodPatch, path, body, out)
}

func (s *Client) Put(ctx context.Context, path string, body, out any) error {
	return s.send(ctx, http.MethodPut, path, body, out)
}

func (s *Client) Delete(ctx context.Context, path string) error {
	return s.execute(s.http.R().SetContext(ctx), http.MethodDelete, path, nil)
}

// SendMultipart 发送 multipart/form-data 请求
func (s *Client) SendMultipart(ctx context.Context, method, path string, form *Form, out any) error {
	return s.execute(form.apply(s.http.R().SetContext(ctx)), method, path, out)
}

func (s *Client) send(ctx context.Context, method, path string, body, out any) error {
	r := s.http.R().SetContext(ctx).SetHeader("Content-Type", "application/json")
	if body != nil {
		r.SetBody(body)
	}
	return s.execute(r, method, path, out)
}

func (s *Client) execute(r *resty.Request, method, path string, out any) error {
	if out != nil {
		r.SetResult(out)
	}
	r.SetError(&dto.ErrorBody{})

	resp, err := r.Execute(method, path)
	if err != nil {
		return &RequestError{Method: method, Path: path, Message: err.Error()}
	}
	if resp.IsError() {
		body, _ := resp.Error().(*dto.ErrorBody)
		return &RequestError{
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode(),
			Message: errorMessage(resp.StatusCode(), body, resp.Body()),
		}
	}
	return nil
}
