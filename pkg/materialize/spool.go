package materialize

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Spool は生成された画像バイト列をローカルディレクトリへ書き出し、
// MaterializeToBytes で解決できる場所（ファイルパス）を発行します。
type Spool struct {
	dir string
}

// NewSpool は dir を作成して Spool を初期化します。
// dir が空の場合は OS の一時ディレクトリ配下を利用します。
func NewSpool(dir string) (*Spool, error) {
	if strings.TrimSpace(dir) == "" {
		dir = filepath.Join(os.TempDir(), "wardrobe-spool")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("スプールディレクトリの作成に失敗しました: %w", err)
	}
	return &Spool{dir: dir}, nil
}

// Dir は書き出し先ディレクトリを返します。
func (s *Spool) Dir() string { return s.dir }

// Put はデータを書き出し、その場所を返します。ファイル名は衝突を避けるため
// UUID で採番し、拡張子は MIME タイプから決定します。
func (s *Spool) Put(ctx context.Context, data []byte, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("data is empty")
	}

	name := uuid.New().String() + extensionForMIME(mimeType)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("スプールへの書き出しに失敗しました: %w", err)
	}
	return path, nil
}

func extensionForMIME(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".bin"
	}
}
