package variation

import (
	"github.com/shouni/go-wardrobe-kit/pkg/domain"
)

// Snapshot は Controller のある時点の状態のコピーです。
// OnChange への通知とポーリングの両方で利用されます。
type Snapshot struct {
	Garment       domain.Garment   `json:"garment"`
	Variants      []domain.Variant `json:"variants"`
	SelectedIndex int              `json:"selected_index"`
	Generating    bool             `json:"generating"`
	LastError     string           `json:"last_error"`
}

// CanGenerate は新しいバッチを開始できる状態かを返します。
func (s Snapshot) CanGenerate() bool {
	return !s.Generating && len(s.Variants) > 0 && s.Variants[0].HasContent()
}

// CanApply は選択中のバリアントをいま適用してよい状態かを返します。
// バッチ進行中は、適用可能なバリアントが選択されていても false です。
func (s Snapshot) CanApply() bool {
	if s.Generating {
		return false
	}
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Variants) {
		return false
	}
	return s.Variants[s.SelectedIndex].Applicable()
}

// Selected は選択中のバリアントを返します。一覧が空の場合は false を返します。
func (s Snapshot) Selected() (domain.Variant, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Variants) {
		return domain.Variant{}, false
	}
	return s.Variants[s.SelectedIndex], true
}

// Snapshot は現在状態のコピーを返します。
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	variants := make([]domain.Variant, len(c.variants))
	copy(variants, c.variants)
	return Snapshot{
		Garment:       c.garment,
		Variants:      variants,
		SelectedIndex: c.selected,
		Generating:    c.generating,
		LastError:     c.lastError,
	}
}
