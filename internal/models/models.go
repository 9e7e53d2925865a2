package models

import "strings"

// Roles for conversation messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one half of a conversation exchange.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// DocumentFormat classifies a source file by how its text was extracted.
type DocumentFormat string

const (
	FormatPlain       DocumentFormat = "plain"
	FormatMarkdown    DocumentFormat = "markdown"
	FormatPDF         DocumentFormat = "pdf"
	FormatDocx        DocumentFormat = "docx"
	FormatSlides      DocumentFormat = "slides"
	FormatSpreadsheet DocumentFormat = "spreadsheet"
)

// RawDocument is one ingested file, reduced to plain text.
// Instances live only for the duration of the startup ingestion pass.
type RawDocument struct {
	SourcePath string
	Text       string
	Format     DocumentFormat
}

// Chunk is a window of a RawDocument sized for embedding.
// SequenceIndex preserves ordering within a single document.
type Chunk struct {
	Text          string
	SourcePath    string
	SequenceIndex int
}

// RenderHistory flattens a conversation into a "role: content" transcript,
// one message per line, in chronological order.
func RenderHistory(history []Message) string {
	var b strings.Builder
	for i, msg := range history {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(msg.Role)
		b.WriteString(": ")
		b.WriteString(msg.Content)
	}
	return b.String()
}
