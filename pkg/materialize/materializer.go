package materialize

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// ImageCacher は、取得済み画像バイト列をキャッシュするためのインターフェースです。
type ImageCacher interface {
	// Get は、指定されたキーに紐づくアイテムを取得します。
	Get(key string) (any, bool)
	// Set は、指定されたキーと値、有効期限でアイテムを保存します。
	Set(key string, value any, d time.Duration)
}

// Materializer は画像の場所（URL・ローカルパス）を所有バイト列へ実体化します。
// gs:// は remoteio、http(s) は SSRF 検証付きの HTTP 取得、
// file:// および素のパスはローカル読み込みで解決します。
type Materializer struct {
	reader     remoteio.InputReader
	httpClient httpkit.ClientInterface
	cache      ImageCacher
	expiration time.Duration
}

// NewMaterializer は依存関係を注入して Materializer を初期化します。
func NewMaterializer(reader remoteio.InputReader, httpClient httpkit.ClientInterface, cache ImageCacher, cacheTTL time.Duration) (*Materializer, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("httpClient is required")
	}
	// cache は nil を許容（キャッシュなし動作）

	return &Materializer{
		reader:     reader,
		httpClient: httpClient,
		cache:      cache,
		expiration: cacheTTL,
	}, nil
}

// MaterializeToBytes は location の指す画像を取得して返します。
// キャッシュが設定されている場合は場所をキーとして再利用します。
func (m *Materializer) MaterializeToBytes(ctx context.Context, location string) ([]byte, error) {
	if location == "" {
		return nil, fmt.Errorf("location is empty")
	}

	if m.cache != nil {
		if val, ok := m.cache.Get(location); ok {
			if data, ok := val.([]byte); ok {
				return data, nil
			}
		}
	}

	data, err := m.fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	if m.cache != nil {
		m.cache.Set(location, data, m.expiration)
	}
	return data, nil
}

func (m *Materializer) fetch(ctx context.Context, location string) ([]byte, error) {
	switch {
	case strings.HasPrefix(location, "gs://"):
		rc, err := m.reader.Open(ctx, location)
		if err != nil {
			return nil, fmt.Errorf("リモート画像の取得に失敗しました: %w", err)
		}
		defer rc.Close()
		return io.ReadAll(rc)

	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		if safe, err := IsSafeURL(location); err != nil || !safe {
			return nil, fmt.Errorf("安全ではないURLが指定されました: %w", err)
		}
		return m.httpClient.FetchBytes(ctx, location)

	case strings.HasPrefix(location, "file://"):
		return os.ReadFile(strings.TrimPrefix(location, "file://"))

	default:
		return os.ReadFile(location)
	}
}
