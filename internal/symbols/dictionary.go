package symbols

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/oneirolab/dreamflow/internal/models"
)

// Dictionary maps category -> symbol name -> definition. It is loaded once at
// startup and never mutated afterwards; WithSymbol returns an updated copy so
// concurrent readers of the old value are never affected.
//
// Category and symbol iteration order is the order of declaration (file order
// for file loads), which fixes the cross-category and substring lookup
// results.
type Dictionary struct {
	categories []string
	names      map[string][]string
	defs       map[string]map[string]models.SymbolDefinition
}

func newDictionary() *Dictionary {
	return &Dictionary{
		names: make(map[string][]string),
		defs:  make(map[string]map[string]models.SymbolDefinition),
	}
}

// Load reads the symbol dictionary from a JSON file. A missing or unparsable
// file falls back to the compiled-in default dictionary so startup never
// fails on dictionary problems.
func Load(path string) *Dictionary {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("[SymbolDictionary] Dictionary file not found, using default symbols",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return Default()
	}

	dict, err := parseOrdered(data)
	if err != nil {
		slog.Error("[SymbolDictionary] Failed to parse dictionary file, using default symbols",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return Default()
	}

	slog.Info("[SymbolDictionary] Dictionary loaded",
		slog.String("path", path),
		slog.Int("categories", len(dict.categories)))
	return dict
}

// parseOrdered decodes the category -> symbol -> definition JSON while
// preserving the order keys appear in the file. encoding/json's map decoding
// would lose it.
func parseOrdered(data []byte) (*Dictionary, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	dict := newDictionary()
	for dec.More() {
		category, err := stringToken(dec)
		if err != nil {
			return nil, err
		}
		if err := expectDelim(dec, '{'); err != nil {
			return nil, err
		}
		for dec.More() {
			name, err := stringToken(dec)
			if err != nil {
				return nil, err
			}
			var def models.SymbolDefinition
			if err := dec.Decode(&def); err != nil {
				return nil, fmt.Errorf("symbol %q in category %q: %w", name, category, err)
			}
			dict.insert(category, strings.ToLower(name), def)
		}
		if _, err := dec.Token(); err != nil { // closing '}'
			return nil, err
		}
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return nil, err
	}

	return dict, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func stringToken(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected string key, got %v", tok)
	}
	return s, nil
}

func (d *Dictionary) insert(category, name string, def models.SymbolDefinition) {
	if _, ok := d.defs[category]; !ok {
		d.categories = append(d.categories, category)
		d.defs[category] = make(map[string]models.SymbolDefinition)
	}
	if _, exists := d.defs[category][name]; !exists {
		d.names[category] = append(d.names[category], name)
	}
	d.defs[category][name] = def
}

// Categories returns category names in declared order.
func (d *Dictionary) Categories() []string {
	return append([]string(nil), d.categories...)
}

// Lookup resolves a symbol name against the dictionary. Resolution order:
// exact match in the reported category, exact match in any category, then a
// substring match in either direction. Categories and names are scanned in
// declared order; the first hit wins.
func (d *Dictionary) Lookup(name, category string) (models.SymbolDefinition, bool) {
	name = strings.ToLower(name)

	if defs, ok := d.defs[category]; ok {
		if def, ok := defs[name]; ok {
			return def, true
		}
	}

	for _, cat := range d.categories {
		if def, ok := d.defs[cat][name]; ok {
			return def, true
		}
	}

	for _, cat := range d.categories {
		for _, sym := range d.names[cat] {
			if strings.Contains(sym, name) || strings.Contains(name, sym) {
				return d.defs[cat][sym], true
			}
		}
	}

	return models.SymbolDefinition{}, false
}

// WithSymbol returns a copy of the dictionary with one symbol added or
// replaced. The receiver is left untouched, so an in-flight request holding
// the old dictionary keeps a consistent view.
func (d *Dictionary) WithSymbol(category, name string, def models.SymbolDefinition) *Dictionary {
	updated := newDictionary()
	updated.categories = append([]string(nil), d.categories...)
	for cat, names := range d.names {
		updated.names[cat] = append([]string(nil), names...)
	}
	for cat, defs := range d.defs {
		copied := make(map[string]models.SymbolDefinition, len(defs))
		for n, v := range defs {
			copied[n] = v
		}
		updated.defs[cat] = copied
	}

	updated.insert(category, strings.ToLower(name), def)

	slog.Info("[SymbolDictionary] Added custom symbol",
		slog.String("symbol", name),
		slog.String("category", category))
	return updated
}

// Save writes the dictionary back out as JSON, preserving declared order.
func (d *Dictionary) Save(path string) error {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, cat := range d.categories {
		catKey, err := json.Marshal(cat)
		if err != nil {
			return err
		}
		fmt.Fprintf(&buf, "  %s: {\n", catKey)
		for j, name := range d.names[cat] {
			nameKey, err := json.Marshal(name)
			if err != nil {
				return err
			}
			defData, err := json.Marshal(d.defs[cat][name])
			if err != nil {
				return err
			}
			fmt.Fprintf(&buf, "    %s: %s", nameKey, defData)
			if j < len(d.names[cat])-1 {
				buf.WriteString(",")
			}
			buf.WriteString("\n")
		}
		buf.WriteString("  }")
		if i < len(d.categories)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("[SymbolDictionary] Failed to save dictionary: %w", err)
	}
	slog.Info("[SymbolDictionary] Dictionary saved", slog.String("path", path))
	return nil
}
