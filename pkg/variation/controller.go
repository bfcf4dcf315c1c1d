package variation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shouni/go-wardrobe-kit/pkg/domain"
)

// StylistClient は Controller が利用する生成サービスの窓口です。
// generator.GeminiStylist がこのインターフェースを満たします。
type StylistClient interface {
	SuggestHarmonicColors(ctx context.Context, image []byte) []string
	Recolor(ctx context.Context, image []byte, colorHex string) (string, error)
}

// FileMaterializer は画像の場所を所有バイト列へ実体化します。
type FileMaterializer interface {
	MaterializeToBytes(ctx context.Context, location string) ([]byte, error)
}

// ApplyFunc は確定したバリアントをホストアプリケーションへ引き渡すコールバックです。
// content は適用する画像バイト列、garment は派生済みの識別情報です。
type ApplyFunc func(ctx context.Context, content []byte, garment domain.Garment)

// Options は Controller の任意設定です。
type Options struct {
	// OnChange は状態遷移のたびにスナップショットを受け取ります。nil 可。
	OnChange func(Snapshot)
	// OnApply は Apply 成立時に呼ばれます。未設定の場合 Apply は常に false を返します。
	OnApply ApplyFunc
}

// LoadErrorMessage は元画像の実体化に失敗した際に保持される利用者向けメッセージです。
const LoadErrorMessage = "could not load original image"

// Controller は1つの衣服に対するカラーバリエーション一覧と、
// その生成・選択・適用のライフサイクルを管理します。
// すべてのメソッドは複数ゴルーチンから安全に呼び出せます。
type Controller struct {
	stylist StylistClient
	files   FileMaterializer
	opts    Options

	mu         sync.Mutex
	garment    domain.Garment
	variants   []domain.Variant
	selected   int
	generating bool
	lastError  string
	batchSeq   uint64
}

// NewController は依存関係を注入して Controller を初期化します。
func NewController(stylist StylistClient, files FileMaterializer, opts Options) (*Controller, error) {
	if stylist == nil {
		return nil, fmt.Errorf("stylist is required")
	}
	if files == nil {
		return nil, fmt.Errorf("files is required")
	}

	return &Controller{
		stylist: stylist,
		files:   files,
		opts:    opts,
	}, nil
}

// Initialize は衣服の元画像を実体化し、バリアント一覧をオリジナルのみへリセットします。
// 対象の衣服が変わるたびに呼び直します。進行中のバッチが残っていても、
// その完了は世代番号の不一致により破棄されます。
// 実体化に失敗した場合、一覧は空になりエラーメッセージが状態に残ります。
func (c *Controller) Initialize(ctx context.Context, garment domain.Garment) error {
	content, err := c.files.MaterializeToBytes(ctx, garment.ImageURL)
	if err == nil && len(content) == 0 {
		err = fmt.Errorf("image content is empty")
	}

	c.mu.Lock()
	c.batchSeq++ // 進行中の旧バッチを無効化する
	c.garment = garment
	c.generating = false
	c.selected = 0

	if err != nil {
		c.variants = nil
		c.lastError = LoadErrorMessage
		snap := c.snapshotLocked()
		c.mu.Unlock()

		c.notify(snap)
		slog.WarnContext(ctx, "元画像の読み込みに失敗しました", "garment_id", garment.ID, "url", garment.ImageURL, "error", err)
		return fmt.Errorf("%s: %w", LoadErrorMessage, err)
	}

	c.variants = []domain.Variant{{
		ColorKey:   domain.OriginalColorKey,
		PreviewURL: garment.ImageURL,
		Content:    content,
		Status:     domain.StatusOriginal,
	}}
	c.lastError = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.notify(snap)
	return nil
}

// GenerateVariations はオリジナル画像からカラー提案を取得し、各カラーの再配色を
// 1件ずつ順番に実行します。呼び出し元のゴルーチンで同期的に動作し、
// 進行は OnChange への通知で観測できます。
// バッチ進行中や未初期化の場合は何もしません。個々のバリアントの失敗は
// そのバリアントの Error 遷移に閉じ、バッチ全体は継続します。
func (c *Controller) GenerateVariations(ctx context.Context) {
	c.mu.Lock()
	if c.generating || len(c.variants) == 0 || !c.variants[0].HasContent() {
		c.mu.Unlock()
		return
	}
	batchID := c.batchSeq
	original := c.variants[0].Content
	c.generating = true
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	// クライアント側のフォールバックにより、提案は必ず1色以上得られる
	colors := c.stylist.SuggestHarmonicColors(ctx, original)

	// 提案カラーを生成中バリアントとして追記する。
	// 結果はカラーキーではなく追記時点の位置で対応付ける。
	c.mu.Lock()
	if c.batchSeq != batchID {
		c.mu.Unlock()
		slog.InfoContext(ctx, "対象の衣服が切り替わったため、バッチを破棄します")
		return
	}
	indexes := make([]int, len(colors))
	for i, color := range colors {
		indexes[i] = len(c.variants)
		c.variants = append(c.variants, domain.Variant{
			ColorKey: color,
			Status:   domain.StatusGenerating,
		})
	}
	snap = c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	// 並列化はせず、1色ずつ処理する
	for i, color := range colors {
		if !c.processColor(ctx, batchID, indexes[i], original, color) {
			slog.InfoContext(ctx, "対象の衣服が切り替わったため、残りのカラーを中止します")
			return
		}
	}

	c.mu.Lock()
	if c.batchSeq != batchID {
		c.mu.Unlock()
		return
	}
	c.generating = false
	snap = c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// processColor は1カラー分の再配色と実体化を行い、結果を対応する位置の
// バリアントへ反映します。世代番号が一致しない場合は反映せず false を返します。
func (c *Controller) processColor(ctx context.Context, batchID uint64, index int, original []byte, color string) bool {
	location, err := c.stylist.Recolor(ctx, original, color)

	var content []byte
	if err == nil {
		content, err = c.files.MaterializeToBytes(ctx, location)
		if err == nil && len(content) == 0 {
			err = fmt.Errorf("image content is empty")
		}
	}
	if err != nil {
		slog.WarnContext(ctx, "バリアントの生成に失敗しました", "color", color, "error", err)
	}

	c.mu.Lock()
	if c.batchSeq != batchID {
		c.mu.Unlock()
		return false
	}
	if err != nil {
		c.variants[index].Status = domain.StatusError
	} else {
		c.variants[index].Status = domain.StatusDone
		c.variants[index].PreviewURL = location
		c.variants[index].Content = content
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
	return true
}

// SelectVariation は選択位置を更新します。Generating や Error のバリアントも
// 選択自体は可能です（適用できるかどうかは Apply 側で判定します）。
// 範囲外の index は無視します。
func (c *Controller) SelectVariation(index int) {
	c.mu.Lock()
	if index < 0 || index >= len(c.variants) {
		c.mu.Unlock()
		return
	}
	c.selected = index
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// Apply は選択中のバリアントを OnApply 経由でホストへ引き渡します。
// 選択中のバリアントが適用可能（Original または Done かつ実体あり）でない場合、
// あるいは OnApply が未設定の場合は何もせず false を返します。
// Controller 自身の状態は変更しません。
func (c *Controller) Apply(ctx context.Context) bool {
	c.mu.Lock()
	if c.selected < 0 || c.selected >= len(c.variants) {
		c.mu.Unlock()
		return false
	}
	variant := c.variants[c.selected]
	garment := c.garment
	c.mu.Unlock()

	if !variant.Applicable() || c.opts.OnApply == nil {
		return false
	}

	derived := domain.DeriveGarment(garment, variant.ColorKey)
	c.opts.OnApply(ctx, variant.Content, derived)
	return true
}

func (c *Controller) notify(snap Snapshot) {
	if c.opts.OnChange != nil {
		c.opts.OnChange(snap)
	}
}
