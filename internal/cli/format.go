package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// outputFormat selects how colorings are printed.
type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case formatText, formatJSON:
		*f = v
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text or json)", s)
	}
}

func (f *outputFormat) Type() string { return "format" }

// record is one emitted coloring.
type record struct {
	Index      int            `json:"index"`
	Base       int            `json:"base"`
	Candidates uint64         `json:"candidates"`
	Colors     map[string]int `json:"colors"`
}

// writeRecord prints r in the given format. Text output lists vertices in
// index order using the supplied labels.
func writeRecord(w io.Writer, f outputFormat, r record, order []string) error {
	if f == formatJSON {
		return json.NewEncoder(w).Encode(r)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "#%d base=%d:", r.Index, r.Base)
	for _, id := range order {
		fmt.Fprintf(&b, " %s=%d", id, r.Colors[id])
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())

	return err
}
