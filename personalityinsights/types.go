package personalityinsights

// Profile is the personality portrait derived from the analysed content.
type Profile struct {
	ID               string    `json:"id"`
	Source           string    `json:"source"`
	WordCount        int       `json:"word_count"`
	WordCountMessage string    `json:"word_count_message,omitempty"`
	ProcessedLang    string    `json:"processed_lang"`
	Tree             TraitNode `json:"tree"`
}

// TraitNode is one node of the recursive characteristic tree. Leaf nodes
// carry percentile scores; interior nodes group related traits.
type TraitNode struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Category         string      `json:"category,omitempty"`
	Percentage       *float64    `json:"percentage,omitempty"`
	SamplingError    *float64    `json:"sampling_error,omitempty"`
	RawScore         *float64    `json:"raw_score,omitempty"`
	RawSamplingError *float64    `json:"raw_sampling_error,omitempty"`
	Children         []TraitNode `json:"children,omitempty"`
}

// ContentItem is a single piece of content submitted for analysis.
type ContentItem struct {
	ID          string `json:"id"`
	UserID      string `json:"userid,omitempty"`
	SourceID    string `json:"sourceid,omitempty"`
	Created     int64  `json:"created,omitempty"`
	Updated     int64  `json:"updated,omitempty"`
	ContentType string `json:"contenttype,omitempty"`
	Language    string `json:"language,omitempty"`
	Content     string `json:"content"`
	ParentID    string `json:"parentid,omitempty"`
	Reply       bool   `json:"reply,omitempty"`
	Forward     bool   `json:"forward,omitempty"`
}

type contentItemsPayload struct {
	ContentItems []ContentItem `json:"contentItems"`
}
