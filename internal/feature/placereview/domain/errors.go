// Package domain はplacereviewフィーチャーのドメインエラーを定義します。
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery は検索語が空（空白のみを含む）の場合に返されます。
	// バックエンドへのリクエストは行われません。
	ErrEmptyQuery = errors.New("query is empty")

	// ErrKeywordCountOutOfRange はキーワード数が許容範囲外の場合に返されます。
	ErrKeywordCountOutOfRange = errors.New("keyword count out of range")
)

// BackendError は生成AIバックエンド呼び出しの失敗を表します。
// ネットワーク・認証・バックエンド側エラー・空レスポンスはすべてこの型にまとめます。
type BackendError struct {
	Cause error
}

func (e *BackendError) Error() string {
	if e.Cause == nil {
		return "backend request failed"
	}
	return fmt.Sprintf("backend request failed: %v", e.Cause)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}
