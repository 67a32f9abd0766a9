package render_test

import (
	"testing"

	"resume-templates/internal/render"

	"github.com/stretchr/testify/assert"
)

func TestLinkLabel(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"https://github.com/johndoe/project", "github.com"},
		{"https://www.linkedin.com/in/johndoe", "linkedin.com"},
		{"http://example.co.uk/path", "example.co.uk"},
		{"example.com", "example.com"},
		{"www.example.com/page", "example.com"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, render.LinkLabel(tc.raw), "input %q", tc.raw)
	}

	t.Run("unparseable input passes through", func(t *testing.T) {
		assert.Equal(t, "://bad url", render.LinkLabel("://bad url"))
	})
}
