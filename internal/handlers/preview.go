// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/palettekitty/internal/palette"
	"github.com/thatcatcamp/palettekitty/internal/themes"
)

const pageStyles = `
		body { max-width: 900px; margin: 0 auto; padding: 20px; line-height: 1.5; }
		header { display: flex; align-items: baseline; justify-content: space-between; flex-wrap: wrap; gap: 10px; }
		header nav a { margin-left: 12px; }
		.shades { list-style: none; margin: 0 0 30px; padding: 0; border-radius: 8px; overflow: hidden; border: 1px solid var(--color-border); }
		.shades li { display: flex; justify-content: space-between; padding: 14px 18px; font-family: ui-monospace, monospace; }
		.shades li.seed { font-weight: 700; }
		.presets { display: grid; grid-template-columns: repeat(auto-fill, minmax(150px, 1fr)); gap: 12px; padding: 0; list-style: none; }
		.presets a { display: block; padding: 14px; border-radius: 8px; text-decoration: none; }
`

// PreviewHandler renders the palette for a hex code as an HTML page
func PreviewHandler(c *gin.Context) {
	p, ok := paletteFromParam(c)
	if !ok {
		renderNotFound(c, c.Param("code"))
		return
	}

	darkMode := isDarkMode(c)
	css := themes.GenerateCSS(themes.GenerateColors(p, darkMode), p)
	code := strings.TrimPrefix(p.Seed, "#")

	toggle := fmt.Sprintf(`<a href="/preview/%s?dark=1">Dark</a>`, code)
	if darkMode {
		toggle = fmt.Sprintf(`<a href="/preview/%s">Light</a>`, code)
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>Material palette preview - %s</title>
	<style>
%s
%s
	</style>
</head>
<body>
	<header>
		<h1>%s</h1>
		<nav>
			<a href="/">Presets</a>
			<a href="/%s">JSON</a>
			<a href="/css/%s">CSS</a>
			%s
		</nav>
	</header>
	<h2>Shades</h2>
	%s
	<h2>Accents</h2>
	%s
</body>
</html>
`, p.Seed, css, pageStyles, p.Seed, code, code, toggle,
		renderShadeList(p.Base(), p.Seed), renderShadeList(p.Accents(), ""))

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// IndexHandler renders the list of preset seeds
func IndexHandler(c *gin.Context) {
	var items strings.Builder
	for _, preset := range themes.ListPresets() {
		p, err := palette.Generate(preset.Seed)
		if err != nil {
			continue
		}
		fmt.Fprintf(&items, `		<li><a href="/preview/%s" style="background: %s; color: %s">%s<br><small>%s</small></a></li>
`, strings.TrimPrefix(p.Seed, "#"), p.Hex("500"), p.Contrast("500"),
			html.EscapeString(preset.Name), p.Seed)
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>Material palette generator</title>
	<style>
		body { font-family: system-ui, sans-serif; }
%s
	</style>
</head>
<body>
	<h1>Material palette generator</h1>
	<p>Request <code>/&lt;hex&gt;</code> for JSON, <code>/preview/&lt;hex&gt;</code> for this page, or <code>/css/&lt;hex&gt;</code> for a stylesheet.</p>
	<ul class="presets">
%s	</ul>
</body>
</html>
`, pageStyles, items.String())

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func renderShadeList(shades []palette.Shade, seed string) string {
	var b strings.Builder
	b.WriteString(`<ul class="shades">`)
	b.WriteString("\n")
	for _, s := range shades {
		class := ""
		if s.Hex == seed && s.Name == "500" {
			class = ` class="seed"`
		}
		fmt.Fprintf(&b, `		<li%s style="background: var(--palette-%s); color: var(--palette-%s-contrast)"><span>%s</span><span>%s</span></li>
`, class, strings.ToLower(s.Name), strings.ToLower(s.Name), s.Name, s.Hex)
	}
	b.WriteString("\t</ul>")
	return b.String()
}

func renderNotFound(c *gin.Context, code string) {
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>Color Not Found</title>
	<style>
		body { font-family: system-ui, sans-serif; max-width: 600px; margin: 100px auto; padding: 20px; text-align: center; }
		h1 { font-size: 72px; margin: 0; color: #dc3545; }
		p { color: #666; line-height: 1.6; }
		a { color: #007bff; text-decoration: none; }
	</style>
</head>
<body>
	<h1>404</h1>
	<p>"%s" is not a 6 digit hex color.</p>
	<p><a href="/">&larr; Presets</a></p>
</body>
</html>`, html.EscapeString(code))

	c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(page))
}
