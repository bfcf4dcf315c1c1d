package generator

import (
	"context"
)

// StylistClient はビジネスロジック層が利用する生成サービスの統合窓口です。
// 画像を返す操作はバイト列ではなく、実体化で解決できる場所（パスやURL）を返します。
type StylistClient interface {
	// SuggestHarmonicColors は衣服画像に調和する16進カラー群を提案します。
	// エラーは返さず、取得や解析に失敗した場合は既定パレットへフォールバックします。
	SuggestHarmonicColors(ctx context.Context, image []byte) []string
	// Recolor は衣服画像を指定カラーへ再配色し、生成画像の場所を返します。
	Recolor(ctx context.Context, image []byte, colorHex string) (string, error)
	// TransformToModel は衣服単体の画像を着用モデル画像へ変換します。
	TransformToModel(ctx context.Context, garmentImage []byte) (string, error)
	// VirtualTryOn はモデル画像に衣服を着せ替えます。
	VirtualTryOn(ctx context.Context, modelImage, garmentImage []byte) (string, error)
	// PoseVariation はモデル画像のポーズを変更します。
	PoseVariation(ctx context.Context, modelImage []byte, pose string) (string, error)
}

// ImageSpool は、生成された画像バイト列を保存して場所を発行するためのインターフェースです。
type ImageSpool interface {
	Put(ctx context.Context, data []byte, mimeType string) (string, error)
}
