// Package dto はplacereview HTTP APIのデータ転送オブジェクトを定義します。
package dto

// AnalyzeRequest は POST /v1/review/analyze のリクエストボディです。
// keyword_count を省略した場合は既定値（5）を使います。
type AnalyzeRequest struct {
	Query        string `json:"query"`
	KeywordCount *int   `json:"keyword_count"`
}

// AnalyzeResponse は分析成功時のレスポンスボディです。
type AnalyzeResponse struct {
	Query        string `json:"query"`
	KeywordCount int    `json:"keyword_count"`
	Markdown     string `json:"markdown"`
	MapSearchURL string `json:"map_search_url"`
}

// ErrorResponse はエラー時のレスポンスボディです。
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}
