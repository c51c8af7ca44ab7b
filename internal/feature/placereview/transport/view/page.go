package view

import (
	"embed"
	"html/template"

	"placereview/internal/feature/placereview/domain/entity"
)

// IndexTemplate はトップページのテンプレート名です。
const IndexTemplate = "index.tmpl"

//go:embed templates/*.tmpl
var templateFS embed.FS

// BannerKind はバナーの種類です。
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerWarning BannerKind = "warning"
	BannerError   BannerKind = "error"
)

// Banner はページ上部に表示する通知です。
type Banner struct {
	Kind    BannerKind
	Message string
}

// Page はトップページに渡すデータです。
type Page struct {
	Query           string
	KeywordCount    int
	MinKeywordCount int
	MaxKeywordCount int
	Banner          *Banner
	Result          template.HTML // 描画済みの分析結果
	MapSearchURL    string        // 検索語から生成した地図検索リンク
}

// NewPage は入力値を保持したページデータを生成します。
func NewPage(query string, keywordCount int) Page {
	return Page{
		Query:           query,
		KeywordCount:    keywordCount,
		MinKeywordCount: entity.MinKeywordCount,
		MaxKeywordCount: entity.MaxKeywordCount,
	}
}

// Templates は埋め込みテンプレートをパースします。
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.tmpl")
}
