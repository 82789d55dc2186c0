package reverse

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"empty":         {in: "", want: ""},
		"single rune":   {in: "a", want: "a"},
		"ascii":         {in: "hello", want: "olleh"},
		"embedded nl":   {in: "abc\ndef", want: "fed\ncba"},
		"accented":      {in: "päev õhtu", want: "uthõ veäp"},
		"cyrillic":      {in: "привет", want: "тевирп"},
		"cjk and ascii": {in: "ab日本", want: "本日ba"},
		"emoji":         {in: "x🙂y", want: "y🙂x"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, Reverse(tc.in))
		})
	}
}

func TestReverseInvolutionAndLength(t *testing.T) {
	inputs := []string{"", "a", "hello world", "sula alus", "ÄÖÜ äöü ß", "日本語テキスト", "🙂🙃 mixed ✓"}
	for _, in := range inputs {
		out := Reverse(in)
		require.Equal(t, in, Reverse(out), "involution for %q", in)
		require.Equal(t, utf8.RuneCountInString(in), utf8.RuneCountInString(out), "rune count for %q", in)
		require.True(t, utf8.ValidString(out))
	}
}

func TestReverseLines(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"empty":               {in: "", want: ""},
		"single line":         {in: "abc", want: "cba"},
		"two lines":           {in: "abc\ndef", want: "cba\nfed"},
		"trailing newline":    {in: "abc\ndef\n", want: "cba\nfed"},
		"only newline":        {in: "\n", want: ""},
		"blank line kept":     {in: "ab\n\ncd", want: "ba\n\ndc"},
		"trailing blank line": {in: "ab\n\n", want: "ba\n"},
		"crlf endings":        {in: "ab\r\ncd\r\n", want: "ba\ndc"},
		"unterminated cr":     {in: "ab\r", want: "\rba"},
		"unicode":             {in: "õun\nжук", want: "nuõ\nкуж"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, ReverseLines(tc.in))
		})
	}
}

func TestReverseLinesPreservesLineCount(t *testing.T) {
	lines := []string{"first", "second line", "", "fourth ✓"}
	out := ReverseLines(strings.Join(lines, "\n"))

	got := strings.Split(out, "\n")
	require.Len(t, got, len(lines))
	for i, line := range lines {
		require.Equal(t, Reverse(line), got[i])
	}
}

func TestTransform(t *testing.T) {
	require.Equal(t, "fed\ncba", Transform("abc\ndef", false))
	require.Equal(t, "cba\nfed", Transform("abc\ndef", true))
}
