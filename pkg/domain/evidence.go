package domain

import "encoding/base64"

// ContentKind discriminates the payload of an Evidence item.
type ContentKind string

const (
	// ContentText marks textual evidence.
	ContentText ContentKind = "text"
	// ContentImagePNG marks a base64-encoded PNG image.
	ContentImagePNG ContentKind = "png_base64"
)

// EvidenceContent is the payload of one evidence item.
type EvidenceContent struct {
	Kind ContentKind `json:"kind"`
	Data string      `json:"data"`
}

// Evidence is an audit artifact attached to exactly one executed instruction
// call. Items are never mutated after creation.
type Evidence struct {
	Label   string          `json:"label"`
	Content EvidenceContent `json:"content"`
}

// TextEvidence creates a textual evidence item.
func TextEvidence(label, text string) Evidence {
	return Evidence{
		Label:   label,
		Content: EvidenceContent{Kind: ContentText, Data: text},
	}
}

// ImageEvidence creates a PNG evidence item from raw image bytes.
func ImageEvidence(label string, png []byte) Evidence {
	return Evidence{
		Label: label,
		Content: EvidenceContent{
			Kind: ContentImagePNG,
			Data: base64.StdEncoding.EncodeToString(png),
		},
	}
}
