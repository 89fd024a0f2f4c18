// parser.go — Sample icon file for appicon init.
package config

// ExampleJSON returns a sample icon.json describing the Medtime icon.
func ExampleJSON() string {
	return `{
  "name": "Medtime",
  "glyph": "💊",
  "background": "#4caf50",
  "foreground": "#ffffff",
  "size": 512,
  "output": "assets/icon/app_icon.png"
}
`
}
