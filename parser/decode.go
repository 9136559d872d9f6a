package parser

import (
	"fmt"
	"strconv"

	"github.com/segmentio/encoding/json"
)

// Raw export shapes. Collection exports are loosely typed: descriptions may
// be strings or {content: ...} objects, URLs may be strings or structured
// objects, scalar values may arrive as numbers or booleans. The raw types
// absorb those variations so the public model stays strict.

type rawCollection struct {
	Info rawInfo   `json:"info"`
	Item []rawItem `json:"item"`
}

type rawInfo struct {
	Name        string         `json:"name"`
	Description rawDescription `json:"description"`
	Schema      string         `json:"schema"`
}

type rawItem struct {
	Name        string         `json:"name"`
	Description rawDescription `json:"description"`
	// Item is a pointer so that a present-but-empty "item" array still
	// classifies the entry as a folder
	Item     *[]rawItem    `json:"item"`
	Request  *rawRequest   `json:"request"`
	Response []rawResponse `json:"response"`
}

// isFolder reports whether the entry carries an "item" attribute. This is
// the single place where the folder/endpoint classification happens.
func (it *rawItem) isFolder() bool { return it.Item != nil }

type rawRequest struct {
	Method      string         `json:"method"`
	URL         rawURL         `json:"url"`
	Description rawDescription `json:"description"`
	Header      []rawKeyValue  `json:"header"`
	Body        *rawBody       `json:"body"`
}

// UnmarshalJSON accepts the shorthand form where the whole request is a bare
// URL string.
func (r *rawRequest) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*r = rawRequest{URL: rawURL{Raw: raw}}
		return nil
	}
	type alias rawRequest
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = rawRequest(a)
	return nil
}

type rawURL struct {
	Raw   string
	Path  []string
	Query []rawKeyValue
}

// UnmarshalJSON accepts either a plain URL string or the structured object
// form with raw/path/query members.
func (u *rawURL) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &u.Raw)
	}
	var obj struct {
		Raw   string        `json:"raw"`
		Path  []rawPathSeg  `json:"path"`
		Query []rawKeyValue `json:"query"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	u.Raw = obj.Raw
	u.Query = obj.Query
	if obj.Path != nil {
		u.Path = make([]string, 0, len(obj.Path))
		for _, seg := range obj.Path {
			u.Path = append(u.Path, string(seg))
		}
	}
	return nil
}

// rawPathSeg is one structured path segment: usually a string, occasionally
// an object with a "value" member for path variables.
type rawPathSeg string

func (s *rawPathSeg) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Value string `json:"value"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*s = rawPathSeg(obj.Value)
		return nil
	}
	var v rawScalar
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = rawPathSeg(v)
	return nil
}

type rawKeyValue struct {
	Key         rawScalar      `json:"key"`
	Value       rawScalar      `json:"value"`
	Description rawDescription `json:"description"`
}

type rawBody struct {
	Mode     string          `json:"mode"`
	Raw      string          `json:"raw"`
	FormData []rawFormField  `json:"formdata"`
	Options  *rawBodyOptions `json:"options"`
}

type rawBodyOptions struct {
	Raw *rawRawOptions `json:"raw"`
}

type rawRawOptions struct {
	Language string `json:"language"`
}

// language returns the declared raw-body language hint, if any.
func (b *rawBody) language() string {
	if b.Options != nil && b.Options.Raw != nil {
		return b.Options.Raw.Language
	}
	return ""
}

type rawFormField struct {
	Key   rawScalar `json:"key"`
	Value rawScalar `json:"value"`
	Type  string    `json:"type"`
}

type rawResponse struct {
	Name            string        `json:"name"`
	Header          []rawKeyValue `json:"header"`
	PreviewLanguage string        `json:"_postman_previewlanguage"`
	Body            string        `json:"body"`
}

// rawDescription accepts either a plain string or an object carrying a
// "content" member, both of which appear in the wild.
type rawDescription string

func (d *rawDescription) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Content string `json:"content"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*d = rawDescription(obj.Content)
		return nil
	}
	var v rawScalar
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*d = rawDescription(v)
	return nil
}

// rawScalar accepts any JSON scalar and renders it as a string. Exports
// produced by hand or by older tooling sometimes carry numbers or booleans
// where strings are expected; null becomes the empty string.
type rawScalar string

func (s *rawScalar) UnmarshalJSON(data []byte) error {
	switch {
	case len(data) == 0:
		*s = ""
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = rawScalar(v)
	case string(data) == "null":
		*s = ""
	case string(data) == "true" || string(data) == "false":
		*s = rawScalar(data)
	default:
		// Number literal: keep the source text verbatim
		if _, err := strconv.ParseFloat(string(data), 64); err != nil {
			return fmt.Errorf("expected scalar, got %s", truncateForError(data))
		}
		*s = rawScalar(data)
	}
	return nil
}

// truncateForError bounds raw JSON echoed into error messages.
func truncateForError(data []byte) string {
	const max = 40
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}

// normalize converts the raw export into the public model and gathers stats.
func normalize(raw *rawCollection) (*Collection, CollectionStats) {
	col := &Collection{
		Name:        raw.Info.Name,
		Description: string(raw.Info.Description),
		Schema:      raw.Info.Schema,
	}
	var stats CollectionStats
	col.Items = normalizeItems(raw.Item, 0, &stats)
	return col, stats
}

func normalizeItems(items []rawItem, depth int, stats *CollectionStats) []Node {
	if len(items) == 0 {
		return nil
	}
	nodes := make([]Node, 0, len(items))
	for i := range items {
		nodes = append(nodes, normalizeItem(&items[i], depth, stats))
	}
	return nodes
}

func normalizeItem(it *rawItem, depth int, stats *CollectionStats) Node {
	if it.isFolder() {
		stats.FolderCount++
		if depth+1 > stats.MaxDepth {
			stats.MaxDepth = depth + 1
		}
		return &Folder{
			Name:        it.Name,
			Description: string(it.Description),
			Items:       normalizeItems(*it.Item, depth+1, stats),
		}
	}
	stats.EndpointCount++
	stats.ResponseCount += len(it.Response)
	ep := &Endpoint{
		Name:        it.Name,
		Description: string(it.Description),
	}
	if it.Request != nil {
		ep.Request = normalizeRequest(it.Request)
	}
	for i := range it.Response {
		ep.Responses = append(ep.Responses, normalizeResponse(&it.Response[i]))
	}
	return ep
}

func normalizeRequest(r *rawRequest) *Request {
	req := &Request{
		Method:      r.Method,
		Description: string(r.Description),
		URL: URL{
			Raw:   r.URL.Raw,
			Path:  r.URL.Path,
			Query: normalizeKeyValues(r.URL.Query),
		},
		Headers: normalizeKeyValues(r.Header),
	}
	if r.Body != nil {
		req.Body = &Body{
			Mode:     r.Body.Mode,
			Raw:      r.Body.Raw,
			Language: r.Body.language(),
		}
		for _, f := range r.Body.FormData {
			req.Body.FormData = append(req.Body.FormData, FormField{
				Key:   string(f.Key),
				Value: string(f.Value),
				Type:  f.Type,
			})
		}
	}
	return req
}

func normalizeKeyValues(kvs []rawKeyValue) []KeyValue {
	if len(kvs) == 0 {
		return nil
	}
	out := make([]KeyValue, 0, len(kvs))
	for _, kv := range kvs {
		out = append(out, KeyValue{
			Key:         string(kv.Key),
			Value:       string(kv.Value),
			Description: string(kv.Description),
		})
	}
	return out
}

func normalizeResponse(r *rawResponse) Response {
	return Response{
		Name:            r.Name,
		Headers:         normalizeKeyValues(r.Header),
		PreviewLanguage: r.PreviewLanguage,
		Body:            r.Body,
	}
}
