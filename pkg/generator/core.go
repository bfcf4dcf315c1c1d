package generator

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/shouni/go-wardrobe-kit/pkg/domain"
	"github.com/shouni/go-wardrobe-kit/pkg/imgutil"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// toImagePart はバイト列を genai.Part (InlineData) に変換します。
// 送信前に長辺を MaxUploadDimension へ縮小し、画像でないデータは nil を返します。
func toImagePart(data []byte) *genai.Part {
	finalData := data
	if UseImageCompression {
		if shrunk, err := imgutil.ShrinkToFit(data, MaxUploadDimension, ImageCompressionQuality); err == nil {
			finalData = shrunk
		}
	}

	mimeType := http.DetectContentType(finalData)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil
	}
	return &genai.Part{
		InlineData: &genai.Blob{
			MIMEType: mimeType,
			Data:     finalData,
		},
	}
}

// parseImage は Gemini の応答から最初の画像データを取り出します。
// 画像が無い場合は、ブロック理由やモデルのテキスト説明を添えた
// domain.GenerationError を返します。
func parseImage(resp *gemini.Response) (*imageOutput, error) {
	if resp == nil || resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return nil, &domain.GenerationError{Reason: "応答が空です", Cause: domain.ErrNoImage}
	}

	// 複数候補が返っても、最初の候補 (Candidate) のみを利用する。
	candidate := resp.RawResponse.Candidates[0]

	var explanation string
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &imageOutput{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
				}, nil
			}
			if part.Text != "" && explanation == "" {
				explanation = strings.TrimSpace(part.Text)
			}
		}
	}

	// 安全フィルター等によるブロックの確認
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, &domain.GenerationError{
			Reason: "コンテンツポリシーによりブロックされました",
			Cause:  domain.ErrBlocked,
		}
	}
	if candidate.FinishReason != genai.FinishReasonUnspecified && candidate.FinishReason != genai.FinishReasonStop {
		return nil, &domain.GenerationError{
			Reason: fmt.Sprintf("生成が異常終了しました (FinishReason: %s)", candidate.FinishReason),
			Cause:  domain.ErrNoImage,
		}
	}

	reason := "画像データが見つかりませんでした"
	if explanation != "" {
		reason = reason + ": " + explanation
	}
	return nil, &domain.GenerationError{Reason: reason, Cause: domain.ErrNoImage}
}

// parseText は Gemini の応答からテキストパーツを連結して取り出します。
func parseText(resp *gemini.Response) (string, error) {
	if resp == nil || resp.RawResponse == nil || len(resp.RawResponse.Candidates) == 0 {
		return "", fmt.Errorf("Geminiからの有効な応答がありませんでした")
	}

	candidate := resp.RawResponse.Candidates[0]
	var sb strings.Builder
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("テキストデータが見つかりませんでした")
	}
	return sb.String(), nil
}
