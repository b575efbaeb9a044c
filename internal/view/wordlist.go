package view

import (
	"html/template"
	"io"
)

// WordListHeader is the fixed card title; it renders regardless of input.
const WordListHeader = "Possible Answers:"

var wordListTmpl = template.Must(template.New("wordlist").Parse(`<div class="card">
  <h2 class="card-header">{{.Header}}</h2>
  <ul class="word-list">
{{- range .Words}}
    <li class="word-row">{{.}}</li>
{{- end}}
  </ul>
</div>
`))

type wordListData struct {
	Header string
	Words  []string
}

// RenderWordList writes the answers card: the fixed header and one row per
// word, in input order, verbatim. It does not validate, deduplicate, sort,
// or truncate the input.
func RenderWordList(w io.Writer, words []string) error {
	return wordListTmpl.Execute(w, wordListData{
		Header: WordListHeader,
		Words:  words,
	})
}
