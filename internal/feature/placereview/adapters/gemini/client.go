// Package gemini はGoogle Gemini APIを使用した場所レビュー分析クライアントを提供します。
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"placereview/internal/feature/placereview/usecase"
	"placereview/internal/shared/ratelimiter"
)

// BackendObserver はバックエンド呼び出しの結果を観測します（メトリクス用）。
type BackendObserver interface {
	ObserveBackend(d time.Duration, err error)
}

// Config はGeminiAnalyzerの設定です。
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string       // 空の場合はSDKのデフォルトエンドポイント
	HTTPClient *http.Client // nilの場合はSDKのデフォルト
	Limiter    ratelimiter.Limiter
	Observer   BackendObserver
}

// GeminiAnalyzer はGoogle Gemini APIを使用して場所レビューを生成します。
type GeminiAnalyzer struct {
	client   *genai.Client
	model    string
	limiter  ratelimiter.Limiter
	observer BackendObserver
}

// GeminiAnalyzerがPlaceAnalyzerを実装していることをコンパイル時に検証します。
var _ usecase.PlaceAnalyzer = (*GeminiAnalyzer)(nil)

// NewGeminiAnalyzer はAPIキーを使用してGeminiAnalyzerの新しいインスタンスを生成します。
func NewGeminiAnalyzer(ctx context.Context, cfg Config) (*GeminiAnalyzer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("gemini model is required")
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiAnalyzer{
		client:   client,
		model:    cfg.Model,
		limiter:  cfg.Limiter,
		observer: cfg.Observer,
	}, nil
}

// Model は使用中のモデル識別子を返します。
func (g *GeminiAnalyzer) Model() string {
	return g.model
}

// Analyze はシステム指示とユーザーメッセージを1回だけ送信し、生成テキストを返します。
func (g *GeminiAnalyzer) Analyze(ctx context.Context, systemInstruction, userMessage string) (string, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter: %w", err)
		}
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(userMessage), config)
	if g.observer != nil {
		g.observer.ObserveBackend(time.Since(start), err)
	}
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini API returned an empty response")
	}
	return text, nil
}
