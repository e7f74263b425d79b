package export

import "testing"

func TestFormatIsValid(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, true},
		{FormatMarkdown, true},
		{Format("pdf"), false},
		{Format(""), false},
	}

	for _, tt := range tests {
		if got := tt.format.IsValid(); got != tt.want {
			t.Errorf("Format(%q).IsValid() = %v, want %v", tt.format, got, tt.want)
		}
	}
}

func TestFormatFileExtension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, ".json"},
		{FormatMarkdown, ".md"},
		{Format("pdf"), ""},
	}

	for _, tt := range tests {
		if got := tt.format.FileExtension(); got != tt.want {
			t.Errorf("Format(%q).FileExtension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatMimeType(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "application/json"},
		{FormatMarkdown, "text/markdown"},
		{Format("pdf"), "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := tt.format.MimeType(); got != tt.want {
			t.Errorf("Format(%q).MimeType() = %q, want %q", tt.format, got, tt.want)
		}
	}
}
