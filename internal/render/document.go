package render

import "fmt"

// Document wraps a rendered fragment in a minimal HTML shell suitable for
// the preview endpoint and for handing to the PDF renderer. The fragment
// already carries its own scoped styles, so the shell stays bare.
func Document(fragment, title string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>body { margin: 0; background: #f0f0f0; } @media print { body { background: #fff; } }</style>
</head>
<body>
%s
</body>
</html>
`, EscapeHTML(title), fragment)
}
