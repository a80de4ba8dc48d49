// Package document serializes a form under construction to and from its
// JSON interchange format. The current format is multipage; a legacy
// single-array payload is still accepted on import and wrapped into one
// synthesized page.
package document

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chazu/formwright/pkg/form"
)

// Version is the format tag written on export.
const Version = "2.1-multipage"

// Import failure sentinels. Callers match with errors.Is to distinguish
// unparseable text from a structurally wrong document.
var (
	ErrMalformed = errors.New("document: malformed JSON")
	ErrNoPages   = errors.New("document: missing pages")
)

// Page is one canvas of components.
type Page struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Components form.Tree `json:"components"`
}

// Document is the serialized form.
type Document struct {
	TemplateName string `json:"templateName"`
	Pages        []Page `json:"pages"`
	Version      string `json:"version"`
}

// ClonePages deep-copies pages with component ids preserved.
func ClonePages(pages []Page) []Page {
	out := make([]Page, len(pages))
	for i, p := range pages {
		out[i] = Page{
			ID:         p.ID,
			Title:      p.Title,
			Components: form.CopyTree(p.Components),
		}
	}
	return out
}

// Export renders the pages as an indented JSON document.
func Export(templateName string, pages []Page) (string, error) {
	doc := Document{
		TemplateName: templateName,
		Pages:        ClonePages(pages),
		Version:      Version,
	}
	for i := range doc.Pages {
		if doc.Pages[i].Components == nil {
			doc.Pages[i].Components = form.Tree{}
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("document: encoding: %w", err)
	}
	return string(data), nil
}

// Import parses a serialized document. Failures never leave partial
// state behind: the caller either gets a fully-formed document or an
// error wrapping one of the sentinels above.
//
// Accepted shapes, newest first:
//   - the multipage format written by Export
//   - a legacy object with a top-level "components" array and no "pages",
//     wrapped into a single synthesized page
func Import(text string) (*Document, error) {
	var raw struct {
		TemplateName string            `json:"templateName"`
		Pages        *json.RawMessage  `json:"pages"`
		Components   []*form.Component `json:"components"`
		Version      string            `json:"version"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	doc := &Document{
		TemplateName: raw.TemplateName,
		Version:      raw.Version,
	}
	switch {
	case raw.Pages != nil:
		if err := json.Unmarshal(*raw.Pages, &doc.Pages); err != nil {
			return nil, fmt.Errorf("%w: pages: %v", ErrMalformed, err)
		}
	case raw.Components != nil:
		doc.Pages = []Page{{
			ID:         form.NewID(),
			Title:      "Page 1",
			Components: raw.Components,
		}}
		if doc.Version == "" {
			doc.Version = Version
		}
	default:
		return nil, ErrNoPages
	}

	for i := range doc.Pages {
		if doc.Pages[i].ID == "" {
			doc.Pages[i].ID = form.NewID()
		}
		if doc.Pages[i].Title == "" {
			doc.Pages[i].Title = fmt.Sprintf("Page %d", i+1)
		}
		if doc.Pages[i].Components == nil {
			doc.Pages[i].Components = form.Tree{}
		}
		if vs := form.Check(doc.Pages[i].Components); len(vs) > 0 {
			return nil, fmt.Errorf("%w: page %d: %v", ErrMalformed, i+1, vs[0])
		}
	}
	return doc, nil
}
