package domain

// VariantStatus はバリアントの生成ライフサイクル上の状態です。
// 遷移は前進のみで、Generating から Done または Error に移った後は変化しません。
type VariantStatus string

const (
	// StatusOriginal は元画像そのものを表す終端状態です。
	StatusOriginal VariantStatus = "original"
	// StatusGenerating は再配色の結果待ちであることを表します。
	StatusGenerating VariantStatus = "generating"
	// StatusDone は生成と実体化の両方が完了したことを表す終端状態です。
	StatusDone VariantStatus = "done"
	// StatusError はそのバリアントの生成が失敗したことを表す終端状態です。
	StatusError VariantStatus = "error"
)

// OriginalColorKey は元画像バリアントを示す予約キーです。
// AI が提案するカラーキーは "#" で始まる16進表記のため衝突しません。
const OriginalColorKey = "original"

// Variant は1つの配色候補（オリジナル含む）とその状態を保持します。
type Variant struct {
	ColorKey   string        `json:"color_key"`
	PreviewURL string        `json:"preview_url"` // 画像の場所。生成完了まで空
	Content    []byte        `json:"-"`
	Status     VariantStatus `json:"status"`
}

// IsTerminal は状態がこれ以上遷移しないかどうかを返します。
func (s VariantStatus) IsTerminal() bool {
	return s == StatusOriginal || s == StatusDone || s == StatusError
}

// HasContent は実体化済みの画像データを保持しているかを返します。
func (v Variant) HasContent() bool {
	return len(v.Content) > 0
}

// Applicable はこのバリアントを適用対象にできるかを返します。
// Original または Done であり、かつ実体を持つ場合のみ真です。
func (v Variant) Applicable() bool {
	return (v.Status == StatusOriginal || v.Status == StatusDone) && v.HasContent()
}
