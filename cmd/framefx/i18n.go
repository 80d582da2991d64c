// Package main provides localization for the framefx CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Apply effect chains and transitions to image sequences": "画像シーケンスにエフェクトチェーンとトランジションを適用",

		// Process command
		"Process an image sequence into a video":                        "画像シーケンスを処理して動画を作成",
		"Job configuration YAML file":                                   "ジョブ設定YAMLファイル",
		"Output video file path":                                        "出力動画ファイルパス",
		"Secondary image sequence directory for transitions":            "トランジション用のセカンダリ画像シーケンスディレクトリ",
		"Output width (default: source width)":                          "出力の幅（デフォルト: ソースの幅）",
		"Output height (default: source height)":                        "出力の高さ（デフォルト: ソースの高さ）",
		"Output frame rate":                                             "出力フレームレート",
		"Effect to apply, as name or name:intensity (repeatable)":       "適用するエフェクト。name または name:intensity 形式（複数指定可）",
		"Transition to the secondary clip (fade, dissolve, wipe_left, ...)": "セカンダリクリップへのトランジション（fade, dissolve, wipe_left など）",
		"Transition start time in seconds":                              "トランジションの開始時刻（秒）",
		"Transition duration in seconds":                                "トランジションの長さ（秒）",

		// Transition command
		"Blend two image sequences with a transition":          "2つの画像シーケンスをトランジションでブレンド",
		"Transition type (fade, dissolve, wipe_left, ...)":     "トランジションの種類（fade, dissolve, wipe_left など）",
		"transition needs a primary and a secondary directory": "transition にはプライマリとセカンダリのディレクトリが必要です",

		// Demo command
		"Render a synthetic test pattern video": "合成テストパターン動画をレンダリング",
		"Output width":                          "出力の幅",
		"Output height":                         "出力の高さ",
		"Number of frames to render":            "レンダリングするフレーム数",

		// Output flags
		"Output container (mp4 or y4m)":        "出力コンテナ（mp4 または y4m）",
		"JPEG quality for MP4 output (1-100)":  "MP4出力のJPEG品質（1-100）",
		"Enable debug output":                  "デバッグ出力を有効化",
		"Directory for debug output":           "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "すべてのログ出力を抑制",

		// Runtime messages
		"Wrote %d frames (%dx%d, %d ms) to %s": "%d フレーム（%dx%d、%d ms）を %s に書き込みました",
		"no input directory (pass it as an argument or set input: in the config)": "入力ディレクトリがありません（引数で渡すか、設定の input: を指定してください）",
		"no output path (use -o or set output: in the config)":                    "出力パスがありません（-o を使うか、設定の output: を指定してください）",
	})
}
