package materialize

import (
	"fmt"
	"net"
	"net/url"
)

// IsSafeURL は、SSRF (Server-Side Request Forgery) 対策として URL を検証します。
// 許可されたスキーム (http, https) かつ、名前解決されたすべての IP アドレスが
// プライベート・ループバック・リンクローカルのいずれでもないことを確認します。
func IsSafeURL(rawURL string) (bool, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return false, fmt.Errorf("URLパース失敗: %w", err)
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return false, fmt.Errorf("不許可スキーム: %s", parsedURL.Scheme)
	}

	host := parsedURL.Hostname()
	var ips []net.IP

	// IPアドレスが直接指定されている場合は名前解決を省略する
	if ip := net.ParseIP(host); ip != nil {
		ips = []net.IP{ip}
	} else {
		resolvedIPs, err := net.LookupIP(host)
		if err != nil {
			return false, fmt.Errorf("ホスト '%s' の名前解決に失敗しました: %w", host, err)
		}
		ips = resolvedIPs
	}

	if len(ips) == 0 {
		return false, fmt.Errorf("IPが見つかりません")
	}

	// すべての解決された IP を検証する
	for _, ip := range ips {
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() {
			return false, fmt.Errorf("制限されたネットワークへのアクセスを検知: %s", ip.String())
		}
	}

	return true, nil
}
