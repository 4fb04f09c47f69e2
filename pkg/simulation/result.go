package simulation

// Sentiment classifies a comment's disposition toward the article.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Reply is a single response to a comment. Owned by its parent
// Comment; it has no identity of its own.
type Reply struct {
	Username string `json:"username"`
	Content  string `json:"content"`
	Likes    int    `json:"likes"`
}

// Comment is one piece of simulated public reaction, tied to the
// platform it appeared on.
type Comment struct {
	Platform  string    `json:"platform"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	Sentiment Sentiment `json:"sentiment"`
	Replies   []Reply   `json:"replies"`
}

// GraphPoint is one sample on a stock index graph. Points are ordered
// chronologically.
type GraphPoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// SectorImpact describes how one market sector moved in reaction to
// the article.
type SectorImpact struct {
	Name          string  `json:"name"`
	ChangePercent float64 `json:"change_percent"`
}

// StockAnalysis models the market reaction of a single index.
type StockAnalysis struct {
	IndexName       string         `json:"index_name"`
	StartValue      float64        `json:"start_value"`
	EndValue        float64        `json:"end_value"`
	Commentary      string         `json:"commentary"`
	GraphData       []GraphPoint   `json:"graph_data"`
	AffectedSectors []SectorImpact `json:"affected_sectors"`
}

// MediaCoverage is how another outlet covered the same story.
type MediaCoverage struct {
	Outlet   string `json:"outlet"`
	Headline string `json:"headline"`
	Tone     string `json:"tone"`
}

// ExtraIndices are the secondary public-mood gauges.
type ExtraIndices struct {
	AnxietyIndex   float64 `json:"anxiety_index"`
	StabilityIndex float64 `json:"stability_index"`
	AngerIndex     float64 `json:"anger_index"`
}

// Result is the full simulated public reaction to one article.
// It is produced once per analysis call and never mutated afterward.
type Result struct {
	ViralityScore    float64 `json:"virality_score"`
	ReliabilityScore float64 `json:"reliability_score"`
	ControversyScore float64 `json:"controversy_score"`

	Sentiment      string `json:"sentiment"`
	EditorFeedback string `json:"editor_feedback"`
	SocialImpact   string `json:"social_impact"`

	ExpectedViews  int `json:"expected_views"`
	ExpectedShares int `json:"expected_shares"`

	StockAnalysis      []StockAnalysis `json:"stock_analysis,omitempty"`
	ExtraIndices       *ExtraIndices   `json:"extra_indices,omitempty"`
	OtherMediaCoverage []MediaCoverage `json:"other_media_coverage"`
	Comments           []Comment       `json:"comments"`
}
