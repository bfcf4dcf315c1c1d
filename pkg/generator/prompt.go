package generator

import (
	"fmt"
	"strings"
)

// 名前付きポーズのプリセットです。posePrompt は任意の自由文も受け付けます。
const (
	PoseFront   = "front"
	PoseSide    = "side"
	PoseBack    = "back"
	PoseWalking = "walking"
)

// suggestPrompt はカラー提案用の指示文です。応答を JSON 配列のみに限定します。
const suggestPrompt = `You are a fashion color stylist. Look at the garment in the image and suggest exactly 4 harmonic hex colors that would work as alternative colorways for this garment. Respond with ONLY a JSON array of hex color strings, for example ["#AABBCC", "#112233", "#445566", "#778899"]. No prose, no markdown.`

// transformToModelPrompt は衣服単体画像からモデル着用画像を作る指示文です。
const transformToModelPrompt = `Create a photorealistic e-commerce photo of a fashion model wearing the garment from this image. Clean studio background, soft diffused lighting, natural standing pose, full garment visible. Keep the garment exactly as provided, including its color, texture and details.`

// tryOnPrompt は着せ替え用の指示文です。1枚目がモデル、2枚目が衣服です。
const tryOnPrompt = `Dress the person in the first image with the garment from the second image. Keep the person's identity, body shape and background unchanged. The garment must keep its original color, texture and details.`

// recolorPrompt は再配色用の指示文を組み立てます。
// 色以外の要素を変えないことを強く指示します。
func recolorPrompt(colorHex string) string {
	lines := []string{
		fmt.Sprintf("Recolor the garment in this image to the exact color %s.", colorHex),
		"Keep the fabric texture, stitching, shadows, lighting and background unchanged.",
		"Change only the garment color. Do not alter the shape, proportions or composition.",
	}
	return strings.Join(lines, " ")
}

var posePresets = map[string]string{
	PoseFront:   "Turn the model to face the camera directly in a relaxed standing pose.",
	PoseSide:    "Turn the model to a 90-degree side profile, standing naturally.",
	PoseBack:    "Turn the model around to show the back view of the outfit.",
	PoseWalking: "Show the model mid-stride, walking toward the camera as on a runway.",
}

// posePrompt はポーズ変更用の指示文を組み立てます。
// プリセット名が見つからない場合は pose を自由文として扱います。
func posePrompt(pose string) string {
	instruction, ok := posePresets[strings.ToLower(strings.TrimSpace(pose))]
	if !ok {
		instruction = "Change the model's pose: " + pose + "."
	}
	return instruction + " Keep the model's identity, outfit and background unchanged."
}
