package model

import "time"

// ScoreFactor is one explainable contributor to a score.
type ScoreFactor struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	Score        float64 `json:"score"`
	Contribution float64 `json:"contribution"`
	Description  string  `json:"description"`
}

// ReputationScore is an append-only persisted score record.
type ReputationScore struct {
	ID            string        `json:"id"`
	WalletAddress string        `json:"walletAddress"`
	Score         int           `json:"score"`
	Factors       []ScoreFactor `json:"factors"`
	Timestamp     time.Time     `json:"timestamp"`
}

// ScoreRecord is a ReputationScore as stored, with factors kept as an opaque blob.
type ScoreRecord struct {
	ID            string
	WalletAddress string
	Score         uint8
	Factors       string
	Timestamp     time.Time
}

// ScoreResult is the caller-facing view of a standard score.
type ScoreResult struct {
	Score     int           `json:"score"`
	Timestamp time.Time     `json:"timestamp"`
	Factors   []ScoreFactor `json:"factors"`
	IsCached  bool          `json:"isCached"`
}

// ScoreHistoryEntry is one point in a wallet's score history.
type ScoreHistoryEntry struct {
	Score     int           `json:"score"`
	Timestamp time.Time     `json:"timestamp"`
	Factors   []ScoreFactor `json:"factors"`
}

// RecalculationReport accounts for a bulk recompute. Failures never abort the batch.
type RecalculationReport struct {
	Total     int      `json:"total"`
	Processed int      `json:"processed"`
	Success   int      `json:"success"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}

// SyncResult reports the outcome of pulling transactions from the external source.
type SyncResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Message string `json:"message,omitempty"`
}

// ScoreKind tags how an enhanced score request resolved.
type ScoreKind string

var (
	// ScoreKindStandard means no secondary scorer ran.
	ScoreKindStandard ScoreKind = "standard"
	// ScoreKindDegraded means the secondary scorer ran but failed, so only the standard score is returned.
	ScoreKindDegraded ScoreKind = "degraded"
	// ScoreKindEnhanced means the standard and secondary scores were blended.
	ScoreKindEnhanced ScoreKind = "enhanced"
)

// EnhancedScoreResult is the caller-facing view of an enhanced score request.
// AIScore and Confidence are set only for ScoreKindEnhanced.
type EnhancedScoreResult struct {
	Kind          ScoreKind     `json:"kind"`
	Score         int           `json:"score"`
	StandardScore int           `json:"standardScore"`
	AIScore       *int          `json:"aiScore,omitempty"`
	Confidence    *float64      `json:"confidence,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
	Factors       []ScoreFactor `json:"factors"`
	IsCached      bool          `json:"isCached"`
	IsEnhanced    bool          `json:"isEnhanced"`
}
