// Package main provides localization for the stitchshot CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Flag categories
		"Input":      "入力",
		"Output":     "出力先",
		"Decoration": "装飾",
		"Debug":      "デバッグ",
		"Logging":    "ログ",

		// Root command
		"Stitch scrollable containers into a single image":                                              "スクロール可能なコンテナを1枚の画像にまとめる",
		"stitchshot measures every item of a container, scales the column to fit and writes one image.": "stitchshotはコンテナの全アイテムを計測し、列を縮小して1枚の画像に書き出します。",

		// Render command
		"Capture a container into one scaled image":                                           "コンテナを縮小した1枚の画像としてキャプチャ",
		"Measure every item, scale the column to the output height and write a single image.": "全アイテムを計測し、出力の高さに合わせて縮小した1枚の画像を書き出します。",

		// Pages command
		"Capture a scroll container one viewport at a time":                                    "スクロールコンテナをビューポート単位でキャプチャ",
		"Scroll by the viewport height and write one image per page, prefixed with its index.": "ビューポートの高さずつスクロールし、番号付きのページ画像を書き出します。",

		// Version command
		"Show version information": "バージョン情報を表示",
		"stitchshot version %s":    "stitchshot バージョン %s",

		// Input flags
		"YAML configuration file":                       "YAML設定ファイル",
		"Container type (view, scroll, list, recycler)": "コンテナの種類（view, scroll, list, recycler）",

		// Output flags
		"Output image path":         "出力画像のパス",
		"Output image width":        "出力画像の幅",
		"Output image height":       "出力画像の高さ",
		"JPEG quality (0-100)":      "JPEG品質（0-100）",
		"Output format (jpeg, png)": "出力形式（jpeg, png）",

		// Decoration flags
		"Background image file (PNG, JPEG, SVG)": "背景画像ファイル（PNG, JPEG, SVG）",
		"Background color (hex, e.g., #f0f0f0)":  "背景色（16進数、例: #f0f0f0）",
		"Logo image file (PNG, JPEG, SVG)":       "ロゴ画像ファイル（PNG, JPEG, SVG）",
		"Generate a text logo":                   "テキストロゴを生成",

		// Debug flags
		"Enable debug output":        "デバッグ出力を有効化",
		"Directory for debug output": "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error)": "ログレベル（debug, info, warn, error）",
		"Suppress all log output":              "全てのログ出力を抑制",

		// Runtime messages
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",

		// Summary output
		"Output execution summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",
		"Summary saved to %s":                                "サマリーを %s に保存しました",
		"Failed to write summary: %s":                        "サマリーの書き込みに失敗しました: %s",
	})
}
