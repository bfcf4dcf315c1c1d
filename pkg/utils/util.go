package utils

import "strings"

const hexDigits = "0123456789abcdefABCDEF"

// NormalizeHexColor は、16進カラー表記を "#RRGGBB"（大文字）に正規化します。
// "#RGB" の短縮形は各桁を複製して展開します。解釈できない場合は false を返します。
func NormalizeHexColor(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return "", false
	}

	body := s[1:]
	for _, r := range body {
		if !strings.ContainsRune(hexDigits, r) {
			return "", false
		}
	}

	switch len(body) {
	case 3:
		var sb strings.Builder
		for _, r := range body {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		body = sb.String()
	case 6:
		// そのまま
	default:
		return "", false
	}

	return "#" + strings.ToUpper(body), true
}

// IsHexColor は、s が正規化可能な16進カラー表記かどうかを返します。
func IsHexColor(s string) bool {
	_, ok := NormalizeHexColor(s)
	return ok
}
