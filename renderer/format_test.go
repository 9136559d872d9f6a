package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jessy-bgl/postman-collection-to-html/parser"
)

func TestFormatResponse_ContentType(t *testing.T) {
	tests := []struct {
		name     string
		headers  []parser.KeyValue
		wantCT   string
		wantLang string
	}{
		{
			name:     "no headers",
			wantCT:   "text/plain",
			wantLang: "text",
		},
		{
			name:     "json",
			headers:  []parser.KeyValue{{Key: "Content-Type", Value: "application/json"}},
			wantCT:   "application/json",
			wantLang: "json",
		},
		{
			name:     "json with charset",
			headers:  []parser.KeyValue{{Key: "Content-Type", Value: "application/json; charset=utf-8"}},
			wantCT:   "application/json; charset=utf-8",
			wantLang: "json",
		},
		{
			name:     "vendored json",
			headers:  []parser.KeyValue{{Key: "content-type", Value: "application/vnd.api+json"}},
			wantCT:   "application/vnd.api+json",
			wantLang: "json",
		},
		{
			name:     "xml",
			headers:  []parser.KeyValue{{Key: "Content-Type", Value: "text/xml"}},
			wantCT:   "text/xml",
			wantLang: "xml",
		},
		{
			name:     "html",
			headers:  []parser.KeyValue{{Key: "Content-Type", Value: "text/html"}},
			wantCT:   "text/html",
			wantLang: "html",
		},
		{
			name:     "javascript",
			headers:  []parser.KeyValue{{Key: "Content-Type", Value: "application/javascript"}},
			wantCT:   "application/javascript",
			wantLang: "javascript",
		},
		{
			name:     "mixed case header key and value",
			headers:  []parser.KeyValue{{Key: "CONTENT-TYPE", Value: "Application/JSON"}},
			wantCT:   "application/json",
			wantLang: "json",
		},
		{
			name:     "unknown type keeps text",
			headers:  []parser.KeyValue{{Key: "Content-Type", Value: "image/png"}},
			wantCT:   "image/png",
			wantLang: "text",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &parser.Response{Headers: tt.headers, Body: "x"}
			f := FormatResponse(resp, 0)
			assert.Equal(t, tt.wantCT, f.ContentType)
			assert.Equal(t, tt.wantLang, f.Language)
		})
	}
}

func TestFormatResponse_PreviewLanguageOverride(t *testing.T) {
	resp := &parser.Response{
		Headers:         []parser.KeyValue{{Key: "Content-Type", Value: "text/plain"}},
		PreviewLanguage: "JSON",
		Body:            `{"a":1}`,
	}
	f := FormatResponse(resp, 0)
	assert.Equal(t, "json", f.Language, "explicit preview hint wins and is lower-cased")
	assert.Equal(t, "text/plain", f.ContentType)
	// The override also triggers JSON pretty-printing.
	assert.Equal(t, "{\n  \"a\": 1\n}", f.Body)
}

func TestFormatResponse_PrettyJSON(t *testing.T) {
	resp := &parser.Response{
		Headers: []parser.KeyValue{{Key: "Content-Type", Value: "application/json"}},
		Body:    `{"id":1,"tags":["a","b"]}`,
	}
	f := FormatResponse(resp, 0)
	assert.Contains(t, f.Body, "\n  ")
	assert.Contains(t, f.Body, `"id"`)
	assert.Contains(t, f.Body, `"tags"`)
}

func TestFormatResponse_InvalidJSONUnchanged(t *testing.T) {
	body := `{"id":1,` // truncated
	resp := &parser.Response{
		Headers: []parser.KeyValue{{Key: "Content-Type", Value: "application/json"}},
		Body:    body,
	}
	f := FormatResponse(resp, 0)
	assert.Equal(t, body, f.Body, "unparsable bodies pass through untouched")
}

func TestFormatResponse_Collapse(t *testing.T) {
	lines := func(n int) string {
		return strings.TrimSuffix(strings.Repeat("line\n", n), "\n")
	}

	t.Run("below threshold", func(t *testing.T) {
		f := FormatResponse(&parser.Response{Body: lines(10)}, 0)
		assert.False(t, f.Collapsed)
	})

	t.Run("above threshold", func(t *testing.T) {
		f := FormatResponse(&parser.Response{Body: lines(15)}, 0)
		assert.True(t, f.Collapsed)
		assert.Equal(t, lines(15), f.Body, "collapse is display-only; the body keeps the full text")
	})

	t.Run("custom threshold", func(t *testing.T) {
		f := FormatResponse(&parser.Response{Body: lines(4)}, 3)
		assert.True(t, f.Collapsed)
	})

	t.Run("threshold counts pretty-printed lines", func(t *testing.T) {
		resp := &parser.Response{
			Headers: []parser.KeyValue{{Key: "Content-Type", Value: "application/json"}},
			Body:    `{"a":1,"b":2,"c":3,"d":4,"e":5,"f":6,"g":7,"h":8,"i":9,"j":10}`,
		}
		f := FormatResponse(resp, 0)
		assert.True(t, f.Collapsed, "the formatted body spans 12 lines")
	})

	t.Run("empty body", func(t *testing.T) {
		f := FormatResponse(&parser.Response{}, 0)
		assert.False(t, f.Collapsed)
		assert.Empty(t, f.Body)
	})
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 1, countLines("a"))
	assert.Equal(t, 2, countLines("a\nb"))
	assert.Equal(t, 3, countLines("a\nb\n"))
}
