package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/p7r0x7/bytemix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		name, msg, want string
	}{
		{"empty", "", "''"},
		{"short", "hello world", "hello world"},
		{"exact", strings.Repeat("a", 50), strings.Repeat("a", 50)},
		{"truncated", strings.Repeat("a", 100), strings.Repeat("a", 47) + "..."},
		{"invalid", "Special \x00\xff bytes", "Special \x00� bytes"},
		{"truncated sequence", "\xe2\x82x", "\ufffdx"},
		{"lone bytes", "\xff\xff", "\ufffd\ufffd"},
		{"cut emoji", "a\xf0\x9f\x98", "a\ufffd"},
		{"surrogate", "\xed\xa0\x80", "\ufffd\ufffd\ufffd"},
		{"overlong", "\xe0\x80\xaf", "\ufffd\ufffd\ufffd"},
		{"beyond U+10FFFF", "\xf4\x90\x80\x80", "\ufffd\ufffd\ufffd\ufffd"},
		{"valid then cut", "\xf0\x9f\x98\x80\xc3", "\U0001F600\ufffd"},
		{"multibyte", strings.Repeat("é", 60), strings.Repeat("é", 47) + "..."},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, preview([]byte(tc.msg), previewRunes))
		})
	}
}

func TestDemo(t *testing.T) {
	var out bytes.Buffer
	demo(&out)
	s := out.String()

	assert.Contains(t, s, bytemix.Sum([]byte("hello world")).Hex())
	assert.Contains(t, s, bytemix.Sum(nil).Hex())
	assert.Equal(t, 9, strings.Count(s, "Length: 32 bytes"))
	assert.Contains(t, s, bytemix.ErrInvalidInputType.Error())
	assert.Contains(t, s, "got string")
}

func TestRecord_JSON(t *testing.T) {
	t.Parallel()
	d := bytemix.Sum([]byte("x"))
	b, err := json.Marshal(record{Target: "x", Mode: bytemix.Canonical.String(), Digest: d.Hex(), Bytes: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"target":"x","mode":"canonical","digest":"`+d.Hex()+`","bytes":1}`, string(b))
}

func TestRender(t *testing.T) {
	d := bytemix.Sum([]byte("hello world"))
	assert.Equal(t, d.Hex(), render(d))

	pBase64 = true
	defer func() { pBase64 = false }()
	assert.Equal(t, d.Base64(), render(d))
}
