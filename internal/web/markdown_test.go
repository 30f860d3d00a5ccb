package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		notWant []string
	}{
		{name: "empty", input: ""},
		{name: "paragraphs", input: "First.\n\nSecond.", want: []string{"<p>First.</p>", "<p>Second.</p>"}},
		{name: "emphasis", input: "**Pros:** pacing", want: []string{"<strong>Pros:</strong>"}},
		{name: "strips script", input: "ok <script>alert(1)</script>", notWant: []string{"<script>"}},
		{name: "strips event handlers", input: `<img src="x.png" onerror="alert(1)">`, notWant: []string{"onerror"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderMarkdown(tt.input)
			if tt.input == "" {
				assert.Empty(t, got)
			}
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, nw := range tt.notWant {
				assert.NotContains(t, got, nw)
			}
		})
	}
}
