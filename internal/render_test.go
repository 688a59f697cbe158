package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{name: "plain", markup: "hello", want: "hello"},
		{
			name:   "highlighted suggestion",
			markup: "<dim>[Prod] <match>Err</match>ors -</dim> <url>https://x/1</url>",
			want:   "[Prod] Errors - https://x/1",
		},
		{name: "entities", markup: "<dim>a &lt;b&gt; &amp; c</dim>", want: "a <b> & c"},
		{name: "unknown tag kept", markup: "<b>bold</b>", want: "<b>bold</b>"},
		{name: "unterminated tag", markup: "x <dim", want: "x <dim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripMarkup(tt.markup))
		})
	}
}

func TestStripMarkup_RoundTripsHighlight(t *testing.T) {
	s := []Suggestion{{Content: "https://x/?a=1&b=2", Description: "[A&B] <Errors> -"}}
	got := Highlight("err", s)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "[A&B] <Errors> - https://x/?a=1&b=2", stripMarkup(got[0].Description))
	}
}

func TestRenderMarkup_KeepsText(t *testing.T) {
	out := RenderMarkup("<dim>[Prod] <match>Err</match>ors -</dim>", DefaultMarkupStyles())
	assert.Contains(t, out, "Err")
	assert.Contains(t, out, "ors -")
}
