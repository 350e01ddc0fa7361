package pathresolver

import "testing"

import "github.com/stretchr/testify/assert"

func TestNormalizeNetworkRoot(t *testing.T) {
	cases := map[string]string{
		`"\\server\share"`:   "//server/share",
		`[\\server\share]`:   "//server/share",
		`\\\server\share`:    "//server/share",
		`//server/share`:     "//server/share",
		`server/share`:       "//server/share",
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeNetworkRoot(in), "input %q", in)
	}
}

func TestHasDoubleSeparator(t *testing.T) {
	assert.True(t, hasDoubleSeparator("//server/share"))
	assert.False(t, hasDoubleSeparator("/server/share"))
	assert.False(t, hasDoubleSeparator("///server/share"))
}
