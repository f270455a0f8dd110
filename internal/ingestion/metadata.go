package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Format is the source format of a job description
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// JobDescription is a cleaned job posting ready for keyword analysis
type JobDescription struct {
	Source string `json:"source,omitempty"`
	Format Format `json:"format"`
	Title  string `json:"title,omitempty"`
	Text   string `json:"text"`
	Hash   string `json:"hash"` // SHA256 hex digest of Text
	Words  int    `json:"words"`
}

// NewJobDescription wraps cleaned text with its metadata
func NewJobDescription(text, source string, format Format, title string) *JobDescription {
	return &JobDescription{
		Source: source,
		Format: format,
		Title:  title,
		Text:   text,
		Hash:   computeHash(text),
		Words:  len(strings.Fields(text)),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
