package entity

// Outcome は1回の分析リクエストの結果種別です。
type Outcome int

const (
	// OutcomeSuccess はバックエンドが本文を返したことを表します。
	OutcomeSuccess Outcome = iota
	// OutcomeWarning は入力不備によりバックエンドを呼ばずに終了したことを表します。
	OutcomeWarning
	// OutcomeFailure はバックエンド呼び出しが失敗したことを表します。
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeWarning:
		return "warning"
	case OutcomeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Result は分析結果です。Outcomeに応じてMarkdownかErrのどちらかが設定されます。
type Result struct {
	Outcome      Outcome
	Query        string // トリム済みの検索語
	KeywordCount int
	Markdown     string // バックエンドの生成テキスト（未加工）
	Err          error
}
