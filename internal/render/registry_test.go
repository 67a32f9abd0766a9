package render_test

import (
	"strings"
	"testing"

	"resume-templates/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRegistry(t *testing.T) {
	reg := render.Builtin()

	t.Run("all variants registered", func(t *testing.T) {
		keys := reg.Keys()
		assert.Len(t, keys, 29)

		seen := map[string]bool{}
		for _, k := range keys {
			assert.True(t, strings.HasPrefix(k, "gqr-resume-"), "key %s", k)
			assert.False(t, seen[k], "duplicate key %s", k)
			seen[k] = true
		}
	})

	t.Run("every style carries a display name", func(t *testing.T) {
		for _, st := range reg.Styles() {
			assert.NotEmpty(t, st.Name, "style %s", st.Key)
		}
	})

	t.Run("sidebar styles never repeat a section across columns", func(t *testing.T) {
		for _, st := range reg.Styles() {
			if len(st.Sidebar) == 0 {
				continue
			}
			main := map[render.Section]bool{}
			for _, sec := range st.Order {
				main[sec] = true
			}
			for _, sec := range st.Sidebar {
				assert.False(t, main[sec], "style %s repeats %s", st.Key, sec)
			}
		}
	})
}

func TestRegistryRegister(t *testing.T) {
	reg := render.NewRegistry()

	ok := reg.Register(&render.Style{Key: "custom", Name: "Custom"})
	require.True(t, ok)

	t.Run("duplicate key is rejected", func(t *testing.T) {
		assert.False(t, reg.Register(&render.Style{Key: "custom", Name: "Other"}))
		st, found := reg.Get("custom")
		require.True(t, found)
		assert.Equal(t, "Custom", st.Name, "first registration wins")
	})

	t.Run("empty key is rejected", func(t *testing.T) {
		assert.False(t, reg.Register(&render.Style{Name: "Anonymous"}))
	})

	t.Run("unknown key misses", func(t *testing.T) {
		_, found := reg.Get("nope")
		assert.False(t, found)
	})

	t.Run("keys preserve registration order", func(t *testing.T) {
		reg.Register(&render.Style{Key: "zz", Name: "ZZ"})
		reg.Register(&render.Style{Key: "aa", Name: "AA"})
		assert.Equal(t, []string{"custom", "zz", "aa"}, reg.Keys())
	})
}
