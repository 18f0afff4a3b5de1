package mdhtml

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPRenderRequest configures HTTPRender.
type HTTPRenderRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Options []RenderOption
}

// FetchDocument issues a GET for rawURL and returns the response body of a
// 2xx reply. Only http and https URLs are accepted. A nil client means
// http.DefaultClient. The caller closes the body.
func FetchDocument(ctx context.Context, client *http.Client, rawURL string) (io.ReadCloser, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("fetch: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return nil, fmt.Errorf("fetch %s: unsupported scheme %q", rawURL, req.URL.Scheme)
	}
	ioTracer().Infof("fetch: GET %s", rawURL)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: status %s", rawURL, resp.Status)
	}
	return resp.Body, nil
}

// HTTPRender fetches a Markdown document over HTTP(S) and writes its HTML.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("render http: Writer is nil")
	}
	body, err := FetchDocument(ctx, req.Client, req.URL)
	if err != nil {
		return fmt.Errorf("render http: %w", err)
	}
	defer body.Close()
	return Render(RenderRequest{
		Reader:  body,
		Writer:  req.Writer,
		Options: req.Options,
	})
}
