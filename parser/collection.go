package parser

import "strings"

// Collection is the root of a parsed collection export.
type Collection struct {
	// Name is the display title of the collection
	Name string
	// Description is optional prose describing the collection
	Description string
	// Schema is the declared export schema URL, when present
	Schema string
	// Items are the top-level nodes in source order
	Items []Node
}

// Node is a single entry in the collection tree: either a *Folder or an
// *Endpoint. The variant is fixed at parse time.
type Node interface {
	// NodeName returns the display name of the node.
	NodeName() string

	isNode()
}

// Folder is a named grouping node. Folders may nest folders or endpoints to
// arbitrary depth.
type Folder struct {
	Name        string
	Description string
	// Items are the folder's children in source order
	Items []Node
}

// NodeName returns the folder's display name.
func (f *Folder) NodeName() string { return f.Name }

func (*Folder) isNode() {}

// Endpoint is a leaf node describing one request definition and its example
// responses. Request may be nil, in which case rendering degrades to a
// placeholder.
type Endpoint struct {
	Name        string
	Description string
	Request     *Request
	// Responses are example responses in source order
	Responses []Response
}

// NodeName returns the endpoint's display name.
func (e *Endpoint) NodeName() string { return e.Name }

func (*Endpoint) isNode() {}

// Request describes the HTTP request of an endpoint.
type Request struct {
	// Method is the HTTP method; empty means GET at render time
	Method      string
	URL         URL
	Description string
	Headers     []KeyValue
	// Body is nil when the request declares no body
	Body *Body
}

// URL holds both the raw form and, when the export provides one, the
// structured form of a request URL. Display prefers the structured path.
type URL struct {
	// Raw is the full URL string as exported
	Raw string
	// Path holds the structured path segments, nil when the export used a
	// plain string URL
	Path []string
	// Query holds the structured query parameters
	Query []KeyValue
}

// KeyValue is a single query parameter or header entry.
type KeyValue struct {
	Key         string
	Value       string
	Description string
}

// Body modes recognized by the renderer.
const (
	// BodyModeRaw is a raw text payload with an optional language hint
	BodyModeRaw = "raw"
	// BodyModeFormData is a list of key/value/type form fields
	BodyModeFormData = "formdata"
)

// Body is a request body tagged by Mode.
type Body struct {
	Mode string
	// Raw is the payload text when Mode is BodyModeRaw
	Raw string
	// Language is the declared language hint for a raw payload, e.g. "json"
	Language string
	// FormData holds the fields when Mode is BodyModeFormData
	FormData []FormField
}

// FormField is one entry of a formdata body.
type FormField struct {
	Key   string
	Value string
	// Type is the field type, e.g. "text" or "file"; empty means text
	Type string
}

// Response is one example response attached to an endpoint.
type Response struct {
	Name    string
	Headers []KeyValue
	// PreviewLanguage is the explicit preview-language hint from the export;
	// it overrides any content-type derived language
	PreviewLanguage string
	Body            string
}

// Header returns the value of the first header whose key matches name
// case-insensitively, and whether such a header exists.
func (r *Response) Header(name string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Key, name) {
			return h.Value, true
		}
	}
	return "", false
}
