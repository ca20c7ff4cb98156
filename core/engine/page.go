package engine

import (
	"bytes"
	"encoding/json"
	"fmt"

	"catalog-sync/core/render"
)

// NextCursor is the cursor a client sends back to continue a delta sync.
type NextCursor struct {
	Updated int64  `json:"updated"`
	After   string `json:"after,omitempty"`
}

// Page is one response of the paginator or the delta resolver.
type Page struct {
	Timestamp  int64           `json:"timestamp"`
	NextOffset *int            `json:"next_offset"`
	HasMore    bool            `json:"has_more"`
	Items      []render.Record `json:"items"`
	NextCursor *NextCursor     `json:"next_cursor,omitempty"`

	small bool
	body  []byte
}

// smallPage is the response shape of non-paginated catalogs.
type smallPage struct {
	Items []render.Record `json:"items"`
}

// JSON returns the response body. Cached pages return the stored bytes as-is.
func (p *Page) JSON() []byte {
	return p.body
}

func (p *Page) encode() error {
	var (
		body []byte
		err  error
	)
	if p.small {
		body, err = json.Marshal(smallPage{Items: p.Items})
	} else {
		body, err = json.Marshal(p)
	}
	if err != nil {
		return fmt.Errorf("encode page: %w", err)
	}
	p.body = body
	return nil
}

// decodePage rebuilds a page from cached bytes. Numbers stay json.Number so
// the page re-encodes to the same digits.
func decodePage(data []byte, small bool) (*Page, error) {
	p := &Page{small: small, body: data}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	if p.Items == nil {
		p.Items = []render.Record{}
	}
	return p, nil
}
