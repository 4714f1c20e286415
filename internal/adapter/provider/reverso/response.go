package reverso

// apiRequest is the JSON body of a Reverso translation query.
type apiRequest struct {
	Format  string     `json:"format"`
	From    string     `json:"from"`
	To      string     `json:"to"`
	Input   []string   `json:"input"`
	Options apiOptions `json:"options"`
}

type apiOptions struct {
	Origin            string `json:"origin"`
	SentenceSplitter  bool   `json:"sentenceSplitter"`
	ContextResults    bool   `json:"contextResults"`
	LanguageDetection bool   `json:"languageDetection"`
}

// apiResponse is the subset of the Reverso response the adapter consumes.
type apiResponse struct {
	Translation    []string          `json:"translation"`
	ContextResults apiContextResults `json:"contextResults"`
}

type apiContextResults struct {
	Results []apiContextResult `json:"results"`
}

// apiContextResult is one context sense: a translation variant plus
// parallel example sentences carrying <em> emphasis markup.
type apiContextResult struct {
	Translation    string   `json:"translation"`
	Frequency      int64    `json:"frequency"`
	SourceExamples []string `json:"sourceExamples"`
	TargetExamples []string `json:"targetExamples"`
}
