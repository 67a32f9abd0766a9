package render

// builtinStyles collects every shipped template descriptor. Order here is
// the gallery order.
func builtinStyles() []*Style {
	var out []*Style
	out = append(out, singleColumnStyles()...)
	out = append(out, bannerStyles()...)
	out = append(out, sidebarStyles()...)
	return out
}

// Shared font stacks. Individual styles may override, but most variants
// draw from these.
const (
	fontSans  = "'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif"
	fontSerif = "Georgia, 'Times New Roman', Times, serif"
	fontMono  = "'Courier New', Courier, monospace"
)
