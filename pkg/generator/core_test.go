package generator

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/shouni/go-wardrobe-kit/pkg/domain"

	"google.golang.org/genai"
)

func TestToImagePart(t *testing.T) {
	t.Run("正常な画像はInlineDataに変換されること", func(t *testing.T) {
		part := toImagePart(createTestImage(t))
		if part == nil || part.InlineData == nil {
			t.Fatal("expected InlineData part, got nil")
		}
		if !strings.HasPrefix(part.InlineData.MIMEType, "image/") {
			t.Errorf("unexpected mime type: %s", part.InlineData.MIMEType)
		}
	})

	t.Run("画像でないデータはnilを返すこと", func(t *testing.T) {
		part := toImagePart([]byte("this is not an image"))
		if part != nil {
			t.Error("expected nil for non-image data")
		}
	})

	t.Run("変換後のデータはデコード可能であること", func(t *testing.T) {
		part := toImagePart(createTestImage(t))
		if part == nil {
			t.Fatal("part should not be nil")
		}
		if _, _, err := image.Decode(bytes.NewReader(part.InlineData.Data)); err != nil {
			t.Errorf("converted data should decode: %v", err)
		}
	})
}

func TestParseImage(t *testing.T) {
	t.Run("正常系: 画像が含まれるレスポンスを正しく解析するのだ", func(t *testing.T) {
		resp := imageResponse("image/png", []byte("png-data"))

		out, err := parseImage(resp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out.Data) != "png-data" || out.MimeType != "image/png" {
			t.Errorf("parsed data mismatch: %+v", out)
		}
	})

	t.Run("異常系: 空のレスポンスはErrNoImageを返すのだ", func(t *testing.T) {
		_, err := parseImage(nil)
		if !errors.Is(err, domain.ErrNoImage) {
			t.Errorf("expected ErrNoImage, got %v", err)
		}
	})

	t.Run("異常系: SAFETYブロックはErrBlockedを返すのだ", func(t *testing.T) {
		_, err := parseImage(finishResponse(genai.FinishReasonSafety))
		if !errors.Is(err, domain.ErrBlocked) {
			t.Errorf("expected ErrBlocked, got %v", err)
		}

		var genErr *domain.GenerationError
		if !errors.As(err, &genErr) {
			t.Fatal("expected GenerationError")
		}
		if !strings.Contains(genErr.Reason, "ブロック") {
			t.Errorf("reason should mention blocking: %s", genErr.Reason)
		}
	})

	t.Run("異常系: テキストのみの応答は説明付きでErrNoImageを返すのだ", func(t *testing.T) {
		resp := textResponse("I cannot change this garment's color.")

		_, err := parseImage(resp)
		if !errors.Is(err, domain.ErrNoImage) {
			t.Fatalf("expected ErrNoImage, got %v", err)
		}

		var genErr *domain.GenerationError
		if !errors.As(err, &genErr) {
			t.Fatal("expected GenerationError")
		}
		if !strings.Contains(genErr.Reason, "I cannot change this garment's color.") {
			t.Errorf("reason should carry the model explanation: %s", genErr.Reason)
		}
	})
}

func TestParseText(t *testing.T) {
	t.Run("複数のテキストパーツが連結されること", func(t *testing.T) {
		resp := textResponse(`["#A0D2DB",`, ` "#7A6E9E"]`)

		got, err := parseText(resp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != `["#A0D2DB", "#7A6E9E"]` {
			t.Errorf("concatenated text mismatch: %s", got)
		}
	})

	t.Run("テキストが無い場合はエラーを返すこと", func(t *testing.T) {
		resp := imageResponse("image/png", []byte("img"))
		if _, err := parseText(resp); err == nil {
			t.Error("expected error for image-only response")
		}
	})

	t.Run("nilレスポンスはエラーを返すこと", func(t *testing.T) {
		if _, err := parseText(nil); err == nil {
			t.Error("expected error for nil response")
		}
	})
}
