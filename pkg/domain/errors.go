package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrBlocked はコンテンツポリシー等により生成がブロックされたことを示します。
	ErrBlocked = errors.New("generation blocked")
	// ErrNoImage は応答に画像データが含まれていなかったことを示します。
	ErrNoImage = errors.New("no image data")
)

// GenerationError は1回の画像生成呼び出しの失敗を表します。
// Reason は利用者にそのまま提示できる説明、Cause は分類用のエラーです。
type GenerationError struct {
	Reason string
	Cause  error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("画像生成に失敗しました: %s: %v", e.Reason, e.Cause)
	}
	return "画像生成に失敗しました: " + e.Reason
}

func (e *GenerationError) Unwrap() error { return e.Cause }
