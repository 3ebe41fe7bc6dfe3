package markup_test

import (
	"testing"

	"github.com/yaklabco/tagtree/pkg/markup"
)

func TestToken_Source(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    markup.Token
		expected string
	}{
		{
			name:     "start tag",
			token:    markup.Token{Kind: markup.TokStartTag, Data: "div"},
			expected: "<div>",
		},
		{
			name:     "end tag",
			token:    markup.Token{Kind: markup.TokEndTag, Data: "div"},
			expected: "</div>",
		},
		{
			name:     "text",
			token:    markup.Token{Kind: markup.TokText, Data: "hello"},
			expected: "hello",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := testCase.token.Source(); got != testCase.expected {
				t.Errorf("expected %q, got %q", testCase.expected, got)
			}
		})
	}
}

func TestTokenKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     markup.TokenKind
		expected string
	}{
		{markup.TokText, "Text"},
		{markup.TokStartTag, "StartTag"},
		{markup.TokEndTag, "EndTag"},
		{markup.TokenKind(99), "Unknown"},
	}

	for _, testCase := range tests {
		testCase := testCase
		if got := testCase.kind.String(); got != testCase.expected {
			t.Errorf("expected %q, got %q", testCase.expected, got)
		}
	}
}

func TestToken_IsTag(t *testing.T) {
	t.Parallel()

	if !(markup.Token{Kind: markup.TokStartTag}).IsTag() {
		t.Error("start tag should be a tag")
	}
	if !(markup.Token{Kind: markup.TokEndTag}).IsTag() {
		t.Error("end tag should be a tag")
	}
	if (markup.Token{Kind: markup.TokText}).IsTag() {
		t.Error("text should not be a tag")
	}
}

func TestToken_Len(t *testing.T) {
	t.Parallel()

	tok := markup.Token{Kind: markup.TokStartTag, Data: "a", StartOffset: 4, EndOffset: 7}
	if tok.Len() != 3 {
		t.Errorf("expected 3, got %d", tok.Len())
	}
}
