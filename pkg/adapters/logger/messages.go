package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Starting job":                    "ジョブを開始します",
		"Job completed successfully":      "ジョブが正常に完了しました",
		"Output saved to %s":              "出力を %s に保存しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",

		// Decode stage
		"Reading frames from %s":          "%s からフレームを読み込み中",
		"Decoded %d frames (%dx%d)":       "%d フレームをデコードしました (%dx%d)",

		// Process stage
		"Applying %d effects to %d frames": "%d 個のエフェクトを %d フレームに適用中",
		"Processing frame %d/%d":          "フレーム処理中 %d/%d",
		"Transition %s over %d frames":    "トランジション %s を %d フレームに適用中",
		"Processing completed":            "処理が完了しました",

		// Encode stage
		"Encoding %d frames at %.1f fps":  "%d フレームを %.1f fps でエンコード中",
		"Video encoded: %d bytes":         "動画エンコード完了: %d バイト",
		"Encoding completed":              "エンコードが完了しました",

		// Warnings
		"effect %d did not apply, skipping": "エフェクト %d は適用されませんでした。スキップします",
		"frame %d failed: %v":             "フレーム %d が失敗しました: %v",
		"Secondary clip shorter than transition window": "セカンダリクリップがトランジション区間より短いです",

		// Errors
		"Failed to read input: %s":        "入力の読み込みに失敗しました: %s",
		"Failed to encode video: %s":      "動画のエンコードに失敗しました: %s",
		"Failed to write output: %s":      "出力の書き込みに失敗しました: %s",
	})
}
