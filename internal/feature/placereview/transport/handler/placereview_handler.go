// Package handler はplacereviewフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"placereview/internal/feature/placereview/domain"
	"placereview/internal/feature/placereview/domain/entity"
	"placereview/internal/feature/placereview/transport/http/dto"
	"placereview/internal/feature/placereview/transport/view"
)

// 画面・APIに表示するメッセージ
const (
	MsgSuccess        = "分析完了！下のリンクから写真を確認してください。"
	MsgEmptyQuery     = "検索語を入力してください！"
	MsgKeywordCount   = "キーワード数は5〜10の範囲で指定してください"
	MsgInvalidRequest = "リクエストが不正です"
	MsgBackendFailed  = "エラーが発生しました。しばらくしてから再度お試しください。"
	MsgAnalysisFailed = "分析に失敗しました"
	MsgRenderFailed   = "分析結果の表示に失敗しました"
)

const (
	formQuery        = "query"
	formKeywordCount = "keyword_count"
)

// PlaceReviewUsecase は場所レビュー分析のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PlaceReviewUsecase interface {
	Analyze(ctx context.Context, query string, keywordCount int) entity.Result
}

// MarkdownRenderer は生成テキストをHTMLへ変換します。
type MarkdownRenderer interface {
	Render(source string) (template.HTML, error)
}

// PlaceReviewHandler は場所レビュー分析のHTTPリクエストを処理します。
type PlaceReviewHandler struct {
	uc  PlaceReviewUsecase
	md  MarkdownRenderer
	log *zap.Logger
}

// NewPlaceReviewHandler はPlaceReviewHandlerの新しいインスタンスを生成します。
func NewPlaceReviewHandler(uc PlaceReviewUsecase, md MarkdownRenderer, log *zap.Logger) *PlaceReviewHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlaceReviewHandler{uc: uc, md: md, log: log}
}

// Index は入力フォームを表示します。
//
// エンドポイント: GET /
func (h *PlaceReviewHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, view.IndexTemplate, view.NewPage("", entity.DefaultKeywordCount))
}

// Submit はフォーム送信を受け付け、分析結果かバナーを表示したページを返します。
//
// エンドポイント: POST /
// Content-Type: application/x-www-form-urlencoded
// フィールド: query（検索語）, keyword_count（5〜10、範囲外は丸める）
func (h *PlaceReviewHandler) Submit(c *gin.Context) {
	query := c.PostForm(formQuery)
	count := parseKeywordCount(c.PostForm(formKeywordCount))

	res := h.uc.Analyze(c.Request.Context(), query, count)
	page := view.NewPage(query, count)

	switch res.Outcome {
	case entity.OutcomeSuccess:
		html, err := h.md.Render(res.Markdown)
		if err != nil {
			h.log.Error("分析結果の描画に失敗", zap.Error(err))
			page.Banner = &view.Banner{Kind: view.BannerError, Message: MsgRenderFailed}
			c.HTML(http.StatusInternalServerError, view.IndexTemplate, page)
			return
		}
		h.log.Debug("分析完了", zap.String("query", res.Query), zap.Int("keyword_count", count))
		page.Banner = &view.Banner{Kind: view.BannerSuccess, Message: MsgSuccess}
		page.Result = html
		page.MapSearchURL = entity.MapSearchURL(res.Query)
		c.HTML(http.StatusOK, view.IndexTemplate, page)

	case entity.OutcomeWarning:
		h.log.Warn("入力が不正なため分析をスキップ", zap.Error(res.Err), zap.String("remote_addr", c.ClientIP()))
		page.Banner = &view.Banner{Kind: view.BannerWarning, Message: warningMessage(res.Err)}
		c.HTML(http.StatusOK, view.IndexTemplate, page)

	default:
		h.log.Error("場所分析に失敗", zap.Error(res.Err))
		page.Banner = &view.Banner{Kind: view.BannerError, Message: BackendErrorMessage(res.Err)}
		c.HTML(http.StatusBadGateway, view.IndexTemplate, page)
	}
}

// AnalyzeJSON は場所レビュー分析をJSONで返します。
//
// エンドポイント: POST /v1/review/analyze
// Content-Type: application/json
func (h *PlaceReviewHandler) AnalyzeJSON(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("分析リクエストのバインドに失敗", zap.Error(err), zap.String("remote_addr", c.ClientIP()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MsgInvalidRequest})
		return
	}
	count := entity.DefaultKeywordCount
	if req.KeywordCount != nil {
		count = *req.KeywordCount
	}

	res := h.uc.Analyze(c.Request.Context(), req.Query, count)

	switch res.Outcome {
	case entity.OutcomeSuccess:
		c.JSON(http.StatusOK, dto.AnalyzeResponse{
			Query:        res.Query,
			KeywordCount: res.KeywordCount,
			Markdown:     res.Markdown,
			MapSearchURL: entity.MapSearchURL(res.Query),
		})
	case entity.OutcomeWarning:
		h.log.Warn("分析リクエストのバリデーションに失敗", zap.Error(res.Err), zap.String("remote_addr", c.ClientIP()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: warningMessage(res.Err)})
	default:
		h.log.Error("場所分析に失敗", zap.Error(res.Err))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: MsgAnalysisFailed, Detail: causeText(res.Err)})
	}
}

// BackendErrorMessage はバックエンド失敗時にユーザーへ表示するメッセージを返します。
// 原因のテキストを括弧書きで含めます。
func BackendErrorMessage(err error) string {
	cause := causeText(err)
	if cause == "" {
		return MsgBackendFailed
	}
	return MsgBackendFailed + "\n(" + cause + ")"
}

func causeText(err error) string {
	var be *domain.BackendError
	if errors.As(err, &be) && be.Cause != nil {
		return be.Cause.Error()
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

func warningMessage(err error) string {
	if errors.Is(err, domain.ErrKeywordCountOutOfRange) {
		return MsgKeywordCount
	}
	return MsgEmptyQuery
}

// parseKeywordCount はフォーム値を解釈し、不正値は既定値、範囲外は上下限に丸めます。
func parseKeywordCount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return entity.DefaultKeywordCount
	}
	return entity.ClampKeywordCount(n)
}
