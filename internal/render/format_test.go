package render_test

import (
	"testing"

	"resume-templates/internal/render"

	"github.com/stretchr/testify/assert"
)

func TestSafeString(t *testing.T) {
	assert.Equal(t, "hello", render.SafeString("hello"))
	assert.Equal(t, "", render.SafeString(nil))
	assert.Equal(t, "", render.SafeString(42))
	assert.Equal(t, "", render.SafeString([]string{"x"}))
}

func TestSafeList(t *testing.T) {
	assert.Equal(t, []string{}, render.SafeList[string](nil))
	assert.Equal(t, []string{"a"}, render.SafeList([]string{"a"}))
}

func TestFormatDate(t *testing.T) {
	t.Run("month-year in english", func(t *testing.T) {
		assert.Equal(t, "Jan 2020", render.FormatDate("2020-01-15", "en", render.DateMonthYear))
		assert.Equal(t, "Mar 2021", render.FormatDate("2021-03", "en", render.DateMonthYear))
	})

	t.Run("month-year in spanish", func(t *testing.T) {
		assert.Equal(t, "Ene 2020", render.FormatDate("2020-01-15", "es", render.DateMonthYear))
	})

	t.Run("year only", func(t *testing.T) {
		assert.Equal(t, "2020", render.FormatDate("2020-06-01", "en", render.DateYearOnly))
		assert.Equal(t, "2020", render.FormatDate("2020", "en", render.DateYearOnly))
	})

	t.Run("numeric", func(t *testing.T) {
		assert.Equal(t, "06/2020", render.FormatDate("2020-06-01", "en", render.DateNumeric))
	})

	t.Run("unparseable input passes through unchanged", func(t *testing.T) {
		for _, raw := range []string{"not a date", "Summer 2020", "13/45/20200", ""} {
			out := render.FormatDate(raw, "en", render.DateMonthYear)
			assert.Equal(t, raw, out)
			assert.NotContains(t, out, "Invalid")
		}
	})

	t.Run("iso timestamp", func(t *testing.T) {
		assert.Equal(t, "Feb 2022", render.FormatDate("2022-02-10T00:00:00Z", "en", render.DateMonthYear))
	})
}

func TestFormatDateRange(t *testing.T) {
	t.Run("start and end", func(t *testing.T) {
		out := render.FormatDateRange("2020-01-01", "2021-06-01", false, "en", render.RangeOptions{})
		assert.Equal(t, "Jan 2020 – Jun 2021", out)
	})

	t.Run("current replaces end with present", func(t *testing.T) {
		out := render.FormatDateRange("2020-01-01", "", true, "en", render.RangeOptions{})
		assert.Equal(t, "Jan 2020 – Present", out)
	})

	t.Run("current localizes present", func(t *testing.T) {
		out := render.FormatDateRange("2020-01-01", "", true, "es", render.RangeOptions{})
		assert.Equal(t, "Ene 2020 – Presente", out)
	})

	t.Run("no end and not current renders start alone", func(t *testing.T) {
		out := render.FormatDateRange("2020-01-01", "", false, "en", render.RangeOptions{})
		assert.Equal(t, "Jan 2020", out)
	})

	t.Run("custom separator and label", func(t *testing.T) {
		out := render.FormatDateRange("2020-01-01", "", true, "en", render.RangeOptions{
			Separator:    "—",
			PresentLabel: "Current",
		})
		assert.Equal(t, "Jan 2020 — Current", out)
	})

	t.Run("current wins over a stale end date", func(t *testing.T) {
		out := render.FormatDateRange("2020-01-01", "2021-01-01", true, "en", render.RangeOptions{})
		assert.Equal(t, "Jan 2020 – Present", out)
	})
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;", render.EscapeHTML("<script>"))
	assert.Equal(t, "Tom &amp; Jerry", render.EscapeHTML("Tom & Jerry"))
	assert.Equal(t, "&#34;quoted&#39;", render.EscapeHTML(`"quoted'`))
	assert.Equal(t, "plain text", render.EscapeHTML("plain text"))
}

func TestLevelUnits(t *testing.T) {
	t.Run("five point scale", func(t *testing.T) {
		assert.Equal(t, 2, render.LevelUnits("basic", 5))
		assert.Equal(t, 3, render.LevelUnits("intermediate", 5))
		assert.Equal(t, 4, render.LevelUnits("advanced", 5))
		assert.Equal(t, 5, render.LevelUnits("native", 5))
	})

	t.Run("unknown level lands on the lowest tier", func(t *testing.T) {
		assert.Equal(t, 2, render.LevelUnits("fluent-ish", 5))
		assert.Equal(t, 2, render.LevelUnits("", 5))
	})

	t.Run("rescaled and clamped", func(t *testing.T) {
		assert.Equal(t, 3, render.LevelUnits("native", 3))
		assert.Equal(t, 1, render.LevelUnits("basic", 3))
		for _, lvl := range []string{"basic", "intermediate", "advanced", "native"} {
			for _, scale := range []int{1, 3, 4, 5, 10} {
				n := render.LevelUnits(lvl, scale)
				assert.GreaterOrEqual(t, n, 1)
				assert.LessOrEqual(t, n, scale)
			}
		}
	})
}
