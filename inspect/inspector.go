// Package inspect renders an HTML page listing the messages retained by the relay.
package inspect

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/x4b1/relay"
)

const defaultLimit = 25

var (
	//go:embed index.tmpl
	indexFile string
	//nolint:gochecknoglobals // parsed once, the template never changes
	indexTemplate = template.Must(template.New("index").Funcs(template.FuncMap{
		"prettyJson": prettyJSON,
		"formatDate": func(t time.Time) string { return t.Format(time.RFC3339) },
	}).Parse(indexFile))
)

func prettyJSON(b json.RawMessage) string {
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return string(b)
	}

	return out.String()
}

// Store returns the retained messages in arrival order.
type Store interface {
	Messages() []relay.Message
}

// NewInspector returns an Inspector reading from s.
func NewInspector(s Store) *Inspector {
	return &Inspector{s: s, limit: defaultLimit}
}

var _ http.Handler = (*Inspector)(nil)

// Inspector serves the retained messages, newest first, paginated by the page query parameter.
type Inspector struct {
	s     Store
	limit int
}

type page struct {
	Total int
	Page  int
	// Prev and Next are zero when there is no such page
	Prev int
	Next int
	Msgs []relay.Message
}

func (i *Inspector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if n < 1 {
		n = 1
	}

	msgs := i.s.Messages()
	slices.Reverse(msgs)

	start := len(msgs)
	if n-1 <= len(msgs)/i.limit {
		start = min((n-1)*i.limit, len(msgs))
	}
	end := min(start+i.limit, len(msgs))

	p := page{
		Total: len(msgs),
		Page:  n,
		Msgs:  msgs[start:end],
	}
	if n > 1 {
		p.Prev = n - 1
	}
	if end < len(msgs) {
		p.Next = n + 1
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, p); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(err.Error()))
	}
}
