// Package usecase はplacereviewフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"placereview/internal/feature/placereview/domain"
	"placereview/internal/feature/placereview/domain/entity"
)

// PlaceAnalyzer は生成AIバックエンドを呼び出すインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type PlaceAnalyzer interface {
	// Analyze はシステム指示とユーザーメッセージを送り、生成テキストを返します。
	Analyze(ctx context.Context, systemInstruction, userMessage string) (string, error)
}

// OutcomeRecorder は分析結果の種別を記録します（メトリクス用）。
type OutcomeRecorder interface {
	RecordOutcome(outcome entity.Outcome)
}

type nopRecorder struct{}

func (nopRecorder) RecordOutcome(entity.Outcome) {}

// placeReviewUsecase は場所レビュー分析のビジネスロジックを提供します。
type placeReviewUsecase struct {
	analyzer PlaceAnalyzer
	recorder OutcomeRecorder
}

// NewPlaceReviewUsecase はplaceReviewUsecaseの新しいインスタンスを生成します。
// recorderがnilの場合は記録しません。
func NewPlaceReviewUsecase(analyzer PlaceAnalyzer, recorder OutcomeRecorder) *placeReviewUsecase {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &placeReviewUsecase{analyzer: analyzer, recorder: recorder}
}

// Analyze は検索語を分析し、結果をタグ付きのResultとして返します。
// 空の検索語や範囲外のキーワード数ではバックエンドを呼び出しません。
func (u *placeReviewUsecase) Analyze(ctx context.Context, query string, keywordCount int) entity.Result {
	res := u.analyze(ctx, query, keywordCount)
	u.recorder.RecordOutcome(res.Outcome)
	return res
}

func (u *placeReviewUsecase) analyze(ctx context.Context, query string, keywordCount int) entity.Result {
	q := strings.TrimSpace(query)
	res := entity.Result{Query: q, KeywordCount: keywordCount}

	if q == "" {
		res.Outcome = entity.OutcomeWarning
		res.Err = domain.ErrEmptyQuery
		return res
	}
	if !entity.ValidKeywordCount(keywordCount) {
		res.Outcome = entity.OutcomeWarning
		res.Err = fmt.Errorf("%w: got %d, want %d..%d", domain.ErrKeywordCountOutOfRange,
			keywordCount, entity.MinKeywordCount, entity.MaxKeywordCount)
		return res
	}

	prompt := BuildPrompt(q, keywordCount)
	text, err := u.analyzer.Analyze(ctx, prompt.SystemInstruction, prompt.UserMessage)
	if err == nil && strings.TrimSpace(text) == "" {
		err = errors.New("empty response")
	}
	if err != nil {
		res.Outcome = entity.OutcomeFailure
		res.Err = &domain.BackendError{Cause: err}
		return res
	}

	res.Outcome = entity.OutcomeSuccess
	res.Markdown = text
	return res
}
