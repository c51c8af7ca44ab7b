// Package entity はplacereviewフィーチャーのドメインモデルを定義します。
package entity

import "net/url"

const (
	// MinKeywordCount は抽出キーワード数の下限です。
	MinKeywordCount = 5
	// MaxKeywordCount は抽出キーワード数の上限です。
	MaxKeywordCount = 10
	// DefaultKeywordCount はスライダーの初期値です。
	DefaultKeywordCount = MinKeywordCount

	// MapSearchBaseURL はGoogleマップ検索URLのベースです。
	MapSearchBaseURL = "https://www.google.com/maps/search/?api=1&query="
)

// Prompt はバックエンドに送るシステム指示とユーザーメッセージの組です。
type Prompt struct {
	SystemInstruction string
	UserMessage       string
}

// ValidKeywordCount はnが許容範囲内かどうかを返します。
func ValidKeywordCount(n int) bool {
	return n >= MinKeywordCount && n <= MaxKeywordCount
}

// ClampKeywordCount はnを許容範囲に丸めます。
func ClampKeywordCount(n int) int {
	switch {
	case n < MinKeywordCount:
		return MinKeywordCount
	case n > MaxKeywordCount:
		return MaxKeywordCount
	default:
		return n
	}
}

// MapSearchURL は場所名からGoogleマップ検索URLを生成します。
func MapSearchURL(name string) string {
	return MapSearchBaseURL + url.QueryEscape(name)
}
