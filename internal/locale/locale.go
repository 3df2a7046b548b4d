package locale

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed data/en.toml
var english []byte

// Table is a flat, dotted-key string table for one locale.
type Table struct {
	code    string
	strings map[string]string
}

// Load decodes a nested TOML string table. Nested tables become dotted keys.
func Load(code string, r io.Reader) (*Table, error) {
	raw := map[string]any{}
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode %s strings: %w", code, err)
	}
	t := &Table{code: code, strings: map[string]string{}}
	flatten("", raw, t.strings)
	return t, nil
}

// English returns the bundled English table.
func English() *Table {
	t, err := Load("en", bytes.NewReader(english))
	if err != nil {
		// The bundled table is compiled in; failing to decode it is a build defect.
		panic(err)
	}
	return t
}

// New builds a table directly from dotted keys.
func New(code string, entries map[string]string) *Table {
	t := &Table{code: code, strings: make(map[string]string, len(entries))}
	for k, v := range entries {
		t.strings[k] = v
	}
	return t
}

func flatten(prefix string, in map[string]any, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// Code returns the locale code, e.g. "en".
func (t *Table) Code() string { return t.code }

// T looks up key and substitutes {name} placeholders from vars. A missing
// key yields the key itself so the UI degrades to something readable.
func (t *Table) T(key string, vars map[string]string) string {
	s, ok := t.strings[key]
	if !ok {
		return key
	}
	if len(vars) == 0 {
		return s
	}
	pairs := make([]string, 0, 2*len(vars))
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
