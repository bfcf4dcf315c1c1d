package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shouni/go-wardrobe-kit/pkg/utils"
)

// DefaultHarmonicPalette は提案の取得や解析に失敗した場合に使う既定の調和4色です。
// SuggestHarmonicColors が利用者へエラーを渡さないための明示的なフォールバックです。
var DefaultHarmonicPalette = []string{"#A0D2DB", "#7A6E9E", "#E8A0BF", "#B4E1D2"}

// FallbackPalette は既定パレットのコピーを返します。
func FallbackPalette() []string {
	out := make([]string, len(DefaultHarmonicPalette))
	copy(out, DefaultHarmonicPalette)
	return out
}

// parsePalette は AI のテキスト応答から16進カラー配列を取り出します。
// まず全体を JSON 配列として解釈し、失敗した場合は最初の '[' と最後の ']' で
// 切り出して再解釈します。妥当なカラーが1つも得られなければエラーを返します。
func parsePalette(content string) ([]string, error) {
	var raw []string
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		// AIの応答にはマークダウンのコードフェンスや前置きが混ざることがある
		start := strings.Index(content, "[")
		end := strings.LastIndex(content, "]")
		if start < 0 || end <= start {
			return nil, fmt.Errorf("カラー配列が見つかりませんでした")
		}
		if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
			return nil, fmt.Errorf("カラー配列の解釈に失敗しました: %w", err)
		}
	}

	colors := make([]string, 0, len(raw))
	for _, c := range raw {
		if hex, ok := utils.NormalizeHexColor(c); ok {
			colors = append(colors, hex)
		}
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("妥当なカラーが含まれていませんでした")
	}
	return colors, nil
}
