package materialize

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"
)

// --- Mocks ---

// mockReader は remoteio.InputReader を実装します。
type mockReader struct {
	openFunc  func(ctx context.Context, uri string) (io.ReadCloser, error)
	openCalls int
}

func (m *mockReader) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	m.openCalls++
	if m.openFunc != nil {
		return m.openFunc(ctx, uri)
	}
	return io.NopCloser(strings.NewReader("")), nil
}

func (m *mockReader) List(ctx context.Context, uri string, fn func(string) error) error {
	return nil
}

// mockHTTPClient は httpkit.ClientInterface を実装します。
type mockHTTPClient struct {
	fetchFunc  func(ctx context.Context, url string) ([]byte, error)
	fetchCalls int
}

func (m *mockHTTPClient) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	m.fetchCalls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, url)
	}
	return nil, nil
}

// インターフェースを満たすための空実装群なのだ
func (m *mockHTTPClient) DoRequest(req *http.Request) ([]byte, error) {
	return nil, nil
}

func (m *mockHTTPClient) FetchAndDecodeJSON(ctx context.Context, url string, v any) error {
	return nil
}

func (m *mockHTTPClient) PostJSONAndFetchBytes(ctx context.Context, url string, data any) ([]byte, error) {
	return nil, nil
}

func (m *mockHTTPClient) PostRawBodyAndFetchBytes(ctx context.Context, url string, body []byte, contentType string) ([]byte, error) {
	return nil, nil
}

// mockCache は ImageCacher インターフェースを実装するのだ。
type mockCache struct {
	data map[string]any
}

func (m *mockCache) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockCache) Set(key string, value any, d time.Duration) {
	if m.data == nil {
		m.data = make(map[string]any)
	}
	m.data[key] = value
}
