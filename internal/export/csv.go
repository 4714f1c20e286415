// Package export renders translated terms into the CSV shape the ReWord
// importer consumes and writes the per-book artifacts.
package export

import (
	"bytes"
	"strings"

	"github.com/heartmarshall/kindleword/internal/domain"
)

// Header names the output columns, in order.
var Header = []string{"Word", "Transcription", "Translation", "Example", "Ex.Translation"}

const delimiter = ';'

// utf8BOM makes the importer pick up Cyrillic text correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Render serializes results into the final byte form: UTF-8 with BOM, a
// header row, then one row per result in input order. The importer
// requires every field quoted, which encoding/csv cannot be made to do,
// so rows are rendered directly. Render is a pure serializer: it never
// reorders, deduplicates, or drops rows, and empty optional fields come
// out as empty quoted cells.
func Render(results []domain.TranslationResult) []byte {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writeRow(&buf, Header)
	for _, r := range results {
		writeRow(&buf, []string{r.Term, r.Transcription, r.Translation, r.ExampleSource, r.ExampleTarget})
	}

	return buf.Bytes()
}

func writeRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteRune(delimiter)
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteString("\r\n")
}
