package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		seen  []string
	}{
		{name: "double enter", input: "a\nb\n\n\n", want: "a\nb", seen: []string{"a", "a\nb"}},
		{name: "CRLF", input: "a\r\nb\r\n\r\n", want: "a\nb", seen: []string{"a", "a\nb"}},
		{name: "EOF without blank line", input: "only", want: "only", seen: []string{"only"}},
		{name: "immediate blank line", input: "\n", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var seen []string
			var out bytes.Buffer
			got, err := GetMultiline(rdr(tc.input), "Content", &out, func(text string) { seen = append(seen, text) })
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.seen, seen)
		})
	}
}

func TestGetPassword(t *testing.T) {
	origRead, origTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = origRead, origTerm })

	t.Run("terminal", func(t *testing.T) {
		isTerminal = func(int) bool { return true }
		readPassword = func(int) ([]byte, error) { return []byte("secret1"), nil }

		var out bytes.Buffer
		got, err := GetPassword(rdr("ignored\n"), "Password", &out)
		require.NoError(t, err)
		assert.Equal(t, "secret1", got)
		assert.Equal(t, "Password: \n", out.String())
	})

	t.Run("terminal error", func(t *testing.T) {
		isTerminal = func(int) bool { return true }
		readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }

		var out bytes.Buffer
		_, err := GetPassword(rdr(""), "Password", &out)
		require.Error(t, err)
	})

	t.Run("piped", func(t *testing.T) {
		isTerminal = func(int) bool { return false }
		readPassword = func(int) ([]byte, error) { t.Fatal("must not read the terminal"); return nil, nil }

		var out bytes.Buffer
		got, err := GetPassword(rdr("piped-secret\n"), "Password", &out)
		require.NoError(t, err)
		assert.Equal(t, "piped-secret", got)
	})
}

func TestConfirm(t *testing.T) {
	for input, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "\n": false, "maybe\n": false} {
		var out bytes.Buffer
		got, err := confirm(rdr(input), "Sure?", &out)
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}
