package yandexdict

// apiResponse is the Yandex Dictionary lookup response.
type apiResponse struct {
	Def []apiDef `json:"def"`
}

// apiDef is one dictionary article for the queried word: its
// part of speech, transcription, and translation entries.
type apiDef struct {
	Text string  `json:"text"`
	Pos  string  `json:"pos"`
	Ts   string  `json:"ts"`
	Tr   []apiTr `json:"tr"`
}

// apiTr is one translation with its synonyms and usage examples.
type apiTr struct {
	Text string       `json:"text"`
	Pos  string       `json:"pos"`
	Syn  []apiText    `json:"syn"`
	Ex   []apiExample `json:"ex"`
}

type apiText struct {
	Text string `json:"text"`
}

// apiExample is a source-language phrase with its translations.
type apiExample struct {
	Text string    `json:"text"`
	Tr   []apiText `json:"tr"`
}
