package ingest

import "testing"

func TestExtractMuseumName(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		want    string
	}{
		{
			name:  "canonical name from title",
			title: "Prado audio guide worth it?",
			want:  "Museo del Prado",
		},
		{
			name:    "canonical name from content",
			title:   "Audio guide question",
			content: "Has anyone used the audioguide at the Vatican?",
			want:    "Vatican Museums",
		},
		{
			name:  "multi word canonical name",
			title: "Tower of London tickets",
			want:  "Tower of London",
		},
		{
			name:  "case insensitive",
			title: "LOUVRE skip the line",
			want:  "Louvre Museum",
		},
		{
			name:  "suffix extraction museum",
			title: "Orsay museum tickets and tours",
			want:  "Orsay Museum",
		},
		{
			name:  "suffix extraction castle",
			title: "Prague castle audio tour",
			want:  "Prague Castle",
		},
		{
			name:  "no attribution",
			title: "General packing advice",
			want:  UnknownMuseum,
		},
		{
			name: "empty fields",
			want: UnknownMuseum,
		},
		{
			name:  "specific duomo wins over generic",
			title: "Milan duomo rooftop",
			want:  "Milan Duomo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractMuseumName(tt.title, tt.content); got != tt.want {
				t.Errorf("ExtractMuseumName(%q, %q) = %q, want %q", tt.title, tt.content, got, tt.want)
			}
		})
	}
}

func TestExtractMuseumName_Deterministic(t *testing.T) {
	title := "Louvre and Vatican in one trip"
	first := ExtractMuseumName(title, "")
	for i := 0; i < 5; i++ {
		if got := ExtractMuseumName(title, ""); got != first {
			t.Fatalf("attribution not deterministic: %q vs %q", got, first)
		}
	}
}
