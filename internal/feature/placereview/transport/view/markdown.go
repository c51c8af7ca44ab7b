// Package view はplacereviewフィーチャーのHTMLテンプレートとマークダウン描画を提供します。
package view

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// MarkdownRenderer はマークダウンをHTMLに変換します。
// 生のHTMLは出力せず（goldmarkのデフォルト）、危険なURLのリンクも無効化されます。
type MarkdownRenderer struct {
	md goldmark.Markdown
}

// NewMarkdownRenderer はGFM拡張を有効にしたMarkdownRendererを生成します。
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Render はバックエンドの生成テキストを加工せずにHTMLへ変換します。
func (r *MarkdownRenderer) Render(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	// goldmarkの出力は生HTMLを含まないためそのまま埋め込める
	return template.HTML(buf.String()), nil
}
