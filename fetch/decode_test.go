package fetch

import (
	"testing"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name        string
		body        []byte
		contentType string
		want        string
	}{
		{
			name:        "declared utf-8",
			body:        []byte("plain utf-8 text: héllo"),
			contentType: "text/plain; charset=utf-8",
			want:        "plain utf-8 text: héllo",
		},
		{
			name:        "declared iso-8859-1",
			body:        []byte{'c', 'a', 'f', 0xE9},
			contentType: "text/plain; charset=iso-8859-1",
			want:        "café",
		},
		{
			name:        "no charset falls back to sniffing",
			body:        []byte("no declared encoding"),
			contentType: "text/plain",
			want:        "no declared encoding",
		},
		{
			name:        "no content type at all",
			body:        []byte("completely bare"),
			contentType: "",
			want:        "completely bare",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeText(tt.body, tt.contentType)
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
