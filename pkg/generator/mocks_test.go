package generator

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// --- Mocks ---

// mockAIClient は gemini.GenerativeModel のテスト用モックなのだ。
type mockAIClient struct {
	generateWithPartsFunc func(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
	generateCalls         int
	lastModel             string
	lastParts             []*genai.Part
}

func (m *mockAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	m.generateCalls++
	m.lastModel = model
	m.lastParts = parts
	if m.generateWithPartsFunc != nil {
		return m.generateWithPartsFunc(ctx, model, parts, opts)
	}
	return nil, nil
}

// インターフェースを満たすための空実装群なのだ
func (m *mockAIClient) GenerateContent(ctx context.Context, model string, prompt string) (*gemini.Response, error) {
	return nil, nil
}

func (m *mockAIClient) UploadFile(ctx context.Context, data []byte, mimeType, displayName string) (string, string, error) {
	return "", "", nil
}

func (m *mockAIClient) DeleteFile(ctx context.Context, name string) error {
	return nil
}

func (m *mockAIClient) GetFile(ctx context.Context, name string) (*genai.File, error) {
	return nil, nil
}

// mockSpool は ImageSpool のテスト用モックなのだ。
type mockSpool struct {
	putFunc      func(ctx context.Context, data []byte, mimeType string) (string, error)
	lastData     []byte
	lastMimeType string
}

func (m *mockSpool) Put(ctx context.Context, data []byte, mimeType string) (string, error) {
	m.lastData = data
	m.lastMimeType = mimeType
	if m.putFunc != nil {
		return m.putFunc(ctx, data, mimeType)
	}
	return "/tmp/spool/generated.png", nil
}

// --- Response builders ---

func imageResponse(mimeType string, data []byte) *gemini.Response {
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}},
				},
			}},
		},
	}
}

func textResponse(texts ...string) *gemini.Response {
	parts := make([]*genai.Part, 0, len(texts))
	for _, text := range texts {
		parts = append(parts, &genai.Part{Text: text})
	}
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: parts},
			}},
		},
	}
}

func finishResponse(reason genai.FinishReason) *gemini.Response {
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: reason}},
		},
	}
}

// テスト用のダミー衣服画像（単色PNG）を作成するヘルパー
func createTestImage(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		t.Fatalf("failed to encode dummy image: %v", err)
	}
	return buf.Bytes()
}
