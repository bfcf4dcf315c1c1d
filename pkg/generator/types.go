package generator

const (
	UseImageCompression     = true
	ImageCompressionQuality = 75
	// MaxUploadDimension は送信画像の長辺上限（ピクセル）です。
	MaxUploadDimension = 1024

	// DefaultImageModel は再配色・着せ替え等の画像生成に使う既定モデルです。
	DefaultImageModel = "gemini-2.5-flash-image"
	// DefaultTextModel はカラー提案に使う既定モデルです。
	DefaultTextModel = "gemini-2.5-flash"
)

// Options は GeminiStylist の任意設定です。ゼロ値で既定モデルが使われます。
type Options struct {
	ImageModel string
	TextModel  string
}

// imageOutput は応答解析の内部結果
type imageOutput struct {
	Data     []byte
	MimeType string
}
