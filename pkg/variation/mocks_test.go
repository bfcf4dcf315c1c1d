package variation

import (
	"context"

	"github.com/shouni/go-wardrobe-kit/pkg/domain"
)

// --- Mocks ---

// fakeStylist は StylistClient のテスト用モックなのだ。
type fakeStylist struct {
	suggestFunc  func(ctx context.Context, image []byte) []string
	recolorFunc  func(ctx context.Context, image []byte, colorHex string) (string, error)
	suggestCalls int
	recolorCalls int
	recolorOrder []string
}

func (f *fakeStylist) SuggestHarmonicColors(ctx context.Context, image []byte) []string {
	f.suggestCalls++
	if f.suggestFunc != nil {
		return f.suggestFunc(ctx, image)
	}
	return []string{"#A0D2DB", "#7A6E9E", "#E8A0BF", "#B4E1D2"}
}

func (f *fakeStylist) Recolor(ctx context.Context, image []byte, colorHex string) (string, error) {
	f.recolorCalls++
	f.recolorOrder = append(f.recolorOrder, colorHex)
	if f.recolorFunc != nil {
		return f.recolorFunc(ctx, image, colorHex)
	}
	return "/spool/" + colorHex + ".png", nil
}

// fakeFiles は FileMaterializer のテスト用モックなのだ。
type fakeFiles struct {
	materializeFunc func(ctx context.Context, location string) ([]byte, error)
}

func (f *fakeFiles) MaterializeToBytes(ctx context.Context, location string) ([]byte, error) {
	if f.materializeFunc != nil {
		return f.materializeFunc(ctx, location)
	}
	return []byte("bytes:" + location), nil
}

// snapshotRecorder は OnChange で流れてくるスナップショットを記録するのだ。
type snapshotRecorder struct {
	snaps []Snapshot
}

func (r *snapshotRecorder) record(s Snapshot) {
	r.snaps = append(r.snaps, s)
}

// applyRecorder は OnApply の呼び出し内容を記録するのだ。
type applyRecorder struct {
	calls   int
	content []byte
	garment domain.Garment
}

func (r *applyRecorder) record(ctx context.Context, content []byte, garment domain.Garment) {
	r.calls++
	r.content = content
	r.garment = garment
}
