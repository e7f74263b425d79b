package export

// Format represents the output format for a design report.
type Format string

const (
	// FormatJSON exports the report as indented JSON.
	FormatJSON Format = "json"

	// FormatMarkdown exports the report as a Markdown design document.
	FormatMarkdown Format = "markdown"
)

// IsValid returns true if the export format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatMarkdown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the export format.
func (f Format) String() string {
	return string(f)
}

// FileExtension returns the file extension for the export format.
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	default:
		return ""
	}
}

// MimeType returns the MIME type for the export format.
func (f Format) MimeType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatMarkdown:
		return "text/markdown"
	default:
		return "application/octet-stream"
	}
}
