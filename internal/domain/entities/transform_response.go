package entities

import "strings"

type PartKind int

const (
	TextPart PartKind = iota
	InlineDataPart
)

// ResponsePart is one element of a model reply: either text or an inline
// binary payload.
type ResponsePart struct {
	Kind     PartKind
	Text     string
	Data     []byte
	MIMEType string
}

func NewTextPart(text string) ResponsePart {
	return ResponsePart{Kind: TextPart, Text: text}
}

func NewInlineDataPart(data []byte, mimeType string) ResponsePart {
	return ResponsePart{Kind: InlineDataPart, Data: data, MIMEType: mimeType}
}

type TransformResponse struct {
	parts []ResponsePart
}

func NewTransformResponse(parts []ResponsePart) *TransformResponse {
	return &TransformResponse{parts: parts}
}

func (r *TransformResponse) Parts() []ResponsePart {
	return r.parts
}

// FirstImage returns the first inline part carrying data. Later parts are ignored.
func (r *TransformResponse) FirstImage() (ResponsePart, bool) {
	for _, part := range r.parts {
		if part.Kind == InlineDataPart && len(part.Data) > 0 {
			return part, true
		}
	}
	return ResponsePart{}, false
}

// Text concatenates every text part.
func (r *TransformResponse) Text() string {
	var sb strings.Builder
	for _, part := range r.parts {
		if part.Kind == TextPart {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
