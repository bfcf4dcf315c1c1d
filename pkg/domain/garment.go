package domain

// Garment は配色バリエーション生成の対象となるワードローブアイテムです。
// ID はホストアプリケーション側で採番された不透明な識別子をそのまま保持します。
type Garment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Brand       string `json:"brand"`
	ImageURL    string `json:"image_url"` // 元画像の場所 (http(s), gs://, ローカルパス)
}

// DeriveGarment は選択されたカラーキーを適用した派生アイテムを作ります。
// ID には常に "-<カラーキー>" を後置し、Name はオリジナル選択時のみ変更しません。
func DeriveGarment(g Garment, colorKey string) Garment {
	derived := g
	derived.ID = g.ID + "-" + colorKey
	if colorKey != OriginalColorKey {
		derived.Name = g.Name + " (" + colorKey + ")"
	}
	return derived
}
