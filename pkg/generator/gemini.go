package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/go-wardrobe-kit/pkg/domain"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// GeminiStylist は StylistClient の Gemini 実装です。
// カラー提案（テキスト応答）と再配色・着せ替え系（画像応答）の両方を担当します。
// 生成された画像はスプールへ書き出し、その場所を返します。
type GeminiStylist struct {
	aiClient   gemini.GenerativeModel
	spool      ImageSpool
	imageModel string
	textModel  string
}

var _ StylistClient = (*GeminiStylist)(nil)

// NewGeminiStylist は依存関係を注入して GeminiStylist を初期化します。
func NewGeminiStylist(aiClient gemini.GenerativeModel, spool ImageSpool, opts Options) (*GeminiStylist, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient is required")
	}
	if spool == nil {
		return nil, fmt.Errorf("spool is required")
	}

	imageModel := opts.ImageModel
	if imageModel == "" {
		imageModel = DefaultImageModel
	}
	textModel := opts.TextModel
	if textModel == "" {
		textModel = DefaultTextModel
	}

	return &GeminiStylist{
		aiClient:   aiClient,
		spool:      spool,
		imageModel: imageModel,
		textModel:  textModel,
	}, nil
}

// SuggestHarmonicColors は衣服画像に調和するカラー群を提案します。
// 通信・解析のどこで失敗しても既定パレットへフォールバックし、エラーは返しません。
func (s *GeminiStylist) SuggestHarmonicColors(ctx context.Context, image []byte) []string {
	imgPart := toImagePart(image)
	if imgPart == nil {
		slog.WarnContext(ctx, "提案用の画像パーツを作成できませんでした。既定パレットを使用します")
		return FallbackPalette()
	}
	parts := []*genai.Part{{Text: suggestPrompt}, imgPart}

	resp, err := s.aiClient.GenerateWithParts(ctx, s.textModel, parts, gemini.GenerateOptions{})
	if err != nil {
		slog.WarnContext(ctx, "カラー提案の取得に失敗しました。既定パレットを使用します", "error", err)
		return FallbackPalette()
	}

	text, err := parseText(resp)
	if err != nil {
		slog.WarnContext(ctx, "カラー提案の応答にテキストがありませんでした。既定パレットを使用します", "error", err)
		return FallbackPalette()
	}

	colors, err := parsePalette(text)
	if err != nil {
		slog.WarnContext(ctx, "カラー提案の解釈に失敗しました。既定パレットを使用します", "error", err)
		return FallbackPalette()
	}
	return colors
}

// Recolor は衣服画像を colorHex へ再配色し、生成画像の場所を返します。
func (s *GeminiStylist) Recolor(ctx context.Context, image []byte, colorHex string) (string, error) {
	return s.generateImage(ctx, recolorPrompt(colorHex), image)
}

// TransformToModel は衣服単体の画像からモデル着用画像を生成します。
func (s *GeminiStylist) TransformToModel(ctx context.Context, garmentImage []byte) (string, error) {
	return s.generateImage(ctx, transformToModelPrompt, garmentImage)
}

// VirtualTryOn はモデル画像に衣服画像を着せ替えます。
func (s *GeminiStylist) VirtualTryOn(ctx context.Context, modelImage, garmentImage []byte) (string, error) {
	return s.generateImage(ctx, tryOnPrompt, modelImage, garmentImage)
}

// PoseVariation はモデル画像のポーズを変更します。プリセット名と自由文の両方を受け付けます。
func (s *GeminiStylist) PoseVariation(ctx context.Context, modelImage []byte, pose string) (string, error) {
	return s.generateImage(ctx, posePrompt(pose), modelImage)
}

// generateImage は画像生成の共通ロジック（パーツ組み立て、通信、解析、スプール）を一括で行うヘルパーなのだ。
func (s *GeminiStylist) generateImage(ctx context.Context, prompt string, images ...[]byte) (string, error) {
	parts := []*genai.Part{{Text: prompt}}
	for i, img := range images {
		imgPart := toImagePart(img)
		if imgPart == nil {
			return "", &domain.GenerationError{
				Reason: fmt.Sprintf("入力画像 %d を変換できませんでした", i+1),
				Cause:  domain.ErrNoImage,
			}
		}
		parts = append(parts, imgPart)
	}

	resp, err := s.aiClient.GenerateWithParts(ctx, s.imageModel, parts, gemini.GenerateOptions{})
	if err != nil {
		return "", &domain.GenerationError{Reason: "生成リクエストに失敗しました", Cause: err}
	}

	out, err := parseImage(resp)
	if err != nil {
		return "", err
	}

	location, err := s.spool.Put(ctx, out.Data, out.MimeType)
	if err != nil {
		return "", &domain.GenerationError{Reason: "生成画像の保存に失敗しました", Cause: err}
	}
	return location, nil
}
