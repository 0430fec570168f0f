package engine

// Format selects how a search response is rendered for the caller.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// SearchRequest is a fully normalized upstream query. Every field is
// populated after BuildSearchRequest; empty TimeRange and nil slices mean
// "omit from the outbound query".
type SearchRequest struct {
	Query      string
	Language   string
	TimeRange  string
	Categories []string
	Engines    []string
	SafeSearch int
	PageNo     int
	MaxResults int // output truncation only, never sent upstream
}

// SearxngResult is a single search result as returned by SearXNG.
type SearxngResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content,omitempty"`
	Engine        string  `json:"engine,omitempty"`
	Score         float64 `json:"score,omitempty"`
	Category      string  `json:"category,omitempty"`
	PrettyURL     string  `json:"pretty_url,omitempty"`
	PublishedDate string  `json:"publishedDate,omitempty"`
}

// SearxngResponse is the JSON body of a SearXNG search call.
type SearxngResponse struct {
	Query               string          `json:"query"`
	NumberOfResults     int             `json:"number_of_results"`
	Results             []SearxngResult `json:"results"`
	Answers             []string        `json:"answers,omitempty"`
	Corrections         []string        `json:"corrections,omitempty"`
	Suggestions         []string        `json:"suggestions,omitempty"`
	UnresponsiveEngines []string        `json:"unresponsive_engines,omitempty"`
}
