package tryon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// StylistClient は Session が利用する生成サービスの窓口です。
// generator.GeminiStylist がこのインターフェースを満たします。
type StylistClient interface {
	TransformToModel(ctx context.Context, garmentImage []byte) (string, error)
	VirtualTryOn(ctx context.Context, modelImage, garmentImage []byte) (string, error)
	PoseVariation(ctx context.Context, modelImage []byte, pose string) (string, error)
}

// FileMaterializer は画像の場所を所有バイト列へ実体化します。
type FileMaterializer interface {
	MaterializeToBytes(ctx context.Context, location string) ([]byte, error)
}

var (
	// ErrBusy は別の操作が進行中であることを示します。
	ErrBusy = errors.New("tryon: operation in progress")
	// ErrNoModel はモデル画像が未読み込みであることを示します。
	ErrNoModel = errors.New("tryon: model image not loaded")
)

// Session は仮想試着のモデル画像を管理します。操作は同時に1件だけ実行され、
// 失敗した場合は直前のモデル画像をそのまま保持します。
type Session struct {
	stylist StylistClient
	files   FileMaterializer

	mu       sync.Mutex
	model    []byte
	modelURL string
	busy     bool
	lastErr  string
}

// NewSession は依存関係を注入して Session を初期化します。
func NewSession(stylist StylistClient, files FileMaterializer) (*Session, error) {
	if stylist == nil {
		return nil, fmt.Errorf("stylist is required")
	}
	if files == nil {
		return nil, fmt.Errorf("files is required")
	}
	return &Session{stylist: stylist, files: files}, nil
}

// LoadModel は既存のモデル写真を読み込み、現在のモデル画像にします。
func (s *Session) LoadModel(ctx context.Context, location string) error {
	if !s.begin() {
		return ErrBusy
	}
	defer s.end()

	content, err := s.files.MaterializeToBytes(ctx, location)
	if err == nil && len(content) == 0 {
		err = fmt.Errorf("image content is empty")
	}
	if err != nil {
		s.fail(ctx, err)
		return err
	}
	s.swap(content, location)
	return nil
}

// TransformToModel は衣服単体の画像から着用モデル画像を生成し、現在のモデルにします。
// モデル未読み込みの状態から試着を始める入り口です。
func (s *Session) TransformToModel(ctx context.Context, garmentImage []byte) error {
	return s.run(ctx, func(ctx context.Context) (string, error) {
		return s.stylist.TransformToModel(ctx, garmentImage)
	})
}

// Wear は現在のモデルに衣服を着せ替えます。モデル未読み込みの場合は ErrNoModel です。
func (s *Session) Wear(ctx context.Context, garmentImage []byte) error {
	return s.run(ctx, func(ctx context.Context) (string, error) {
		model, ok := s.currentModel()
		if !ok {
			return "", ErrNoModel
		}
		return s.stylist.VirtualTryOn(ctx, model, garmentImage)
	})
}

// ChangePose は現在のモデルのポーズを変更します。
// pose はプリセット名（generator.PoseFront 等）と自由文の両方を受け付けます。
func (s *Session) ChangePose(ctx context.Context, pose string) error {
	return s.run(ctx, func(ctx context.Context) (string, error) {
		model, ok := s.currentModel()
		if !ok {
			return "", ErrNoModel
		}
		return s.stylist.PoseVariation(ctx, model, pose)
	})
}

// Model は現在のモデル画像とその場所を返します。未読み込みの場合は false です。
func (s *Session) Model() ([]byte, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.model) == 0 {
		return nil, "", false
	}
	return s.model, s.modelURL, true
}

// Busy は操作が進行中かどうかを返します。
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// LastError は直近の失敗メッセージを返します。成功した操作で消去されます。
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// run は生成、実体化、モデル差し替えの共通手順です。
func (s *Session) run(ctx context.Context, generate func(ctx context.Context) (string, error)) error {
	if !s.begin() {
		return ErrBusy
	}
	defer s.end()

	location, err := generate(ctx)
	if err != nil {
		s.fail(ctx, err)
		return err
	}

	content, err := s.files.MaterializeToBytes(ctx, location)
	if err == nil && len(content) == 0 {
		err = fmt.Errorf("image content is empty")
	}
	if err != nil {
		s.fail(ctx, err)
		return err
	}

	s.swap(content, location)
	return nil
}

func (s *Session) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *Session) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *Session) currentModel() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.model) == 0 {
		return nil, false
	}
	return s.model, true
}

func (s *Session) swap(content []byte, location string) {
	s.mu.Lock()
	s.model = content
	s.modelURL = location
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Session) fail(ctx context.Context, err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
	slog.WarnContext(ctx, "試着操作に失敗しました", "error", err)
}
