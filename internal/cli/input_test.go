package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("  hello \n")), "Name:", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, "Name: ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("abc")), ">", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"Oui\n", true},
		{"yes\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tt := range tests {
		got, err := Confirm(bufio.NewReader(strings.NewReader(tt.in)), "Sure?", &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
