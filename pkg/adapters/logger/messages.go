package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Capture level messages (info)
		"Capturing %s with %d items":                 "%s (%d 項目) をキャプチャ中",
		"Content measured: %d items, %d px":          "計測完了: %d 項目, %d px",
		"Layout calculated: %d px total, scale %.3f": "レイアウト計算完了: 合計 %d px, 縮尺 %.3f",
		"Compositing %dx%d image":                    "%dx%d の画像を合成中",
		"Encoding %s with quality %d":                "品質 %[2]d で %[1]s にエンコード中",
		"Output saved to %s (%d bytes)":              "出力を %s に保存しました (%d バイト)",
		"Capture completed successfully":             "キャプチャが正常に完了しました",
		"Interrupted, shutting down...":              "中断されました。シャットダウン中...",

		// Paged capture
		"Capturing page %d at scroll offset %d": "スクロール位置 %[2]d でページ %[1]d をキャプチャ中",
		"Saved %d pages to %s":                  "%d ページを %s に保存しました",
		"Removed stale page %s":                 "古いページ %s を削除しました",

		// Watermark
		"Generating text logo: %dx%d": "テキストロゴを生成中: %dx%d",

		// Warnings
		"Item %d rendered at %d px but measured %d px": "項目 %d の描画高さ %d px が計測値 %d px と異なります",
		"Background image is empty, skipping":          "背景画像が空のためスキップします",
		"Failed to remove stale page %s: %s":           "古いページ %s の削除に失敗しました: %s",

		// Errors
		"Failed to measure content: %s":  "コンテンツの計測に失敗しました: %s",
		"Failed to calculate layout: %s": "レイアウトの計算に失敗しました: %s",
		"Failed to composite image: %s":  "画像の合成に失敗しました: %s",
		"Failed to encode image: %s":     "画像のエンコードに失敗しました: %s",
		"Failed to write output: %s":     "出力の書き込みに失敗しました: %s",
		"Failed to capture page %d: %s":  "ページ %d のキャプチャに失敗しました: %s",
	})
}
