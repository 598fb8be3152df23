// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"

	"github.com/thatcatcamp/palettekitty/internal/palette"
)

// GenerateCSS generates a stylesheet with role variables from colors and one
// variable pair per palette shade
func GenerateCSS(colors *Colors, p *palette.Palette) string {
	var shades strings.Builder
	for _, s := range p.Shades {
		fmt.Fprintf(&shades, "  --palette-%s: %s;\n", strings.ToLower(s.Name), s.Hex)
		fmt.Fprintf(&shades, "  --palette-%s-contrast: %s;\n", strings.ToLower(s.Name), s.Contrast)
	}

	return fmt.Sprintf(`:root {
  --color-primary: %s;
  --color-primary-contrast: %s;
  --color-secondary: %s;
  --color-bg: %s;
  --color-surface: %s;
  --color-text: %s;
  --color-text-muted: %s;
  --color-border: %s;
  --color-success: %s;
  --color-error: %s;
  --color-warning: %s;
%s}

body {
  background-color: var(--color-bg);
  color: var(--color-text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
  transition: background-color 0.2s, color 0.2s;
}

a {
  color: var(--color-primary);
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}

.card, .surface {
  background-color: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: 8px;
  padding: 16px;
}

.text-muted, .muted {
  color: var(--color-text-muted);
}
`, colors.Primary, colors.PrimaryContrast, colors.Secondary, colors.Background,
		colors.Surface, colors.Text, colors.TextMuted, colors.Border,
		colors.Success, colors.Error, colors.Warning, shades.String())
}
