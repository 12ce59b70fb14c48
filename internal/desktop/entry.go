// Package desktop renders and installs freedesktop application entries.
package desktop

import "fmt"

// FallbackIcon names the generic icon used when extraction produced
// nothing; desktop environments ship it in every theme.
const FallbackIcon = "application-x-executable"

const entryTemplate = `[Desktop Entry]
Type=Application
Name=%s
Comment=AppImage Application
Exec=%s %%u
Icon=%s
Terminal=false
Categories=%s
`

// Entry is a single application launcher.
type Entry struct {
	Name     string
	Exec     string
	Icon     string
	Category string
}

// Render produces the entry file content. An empty Icon falls back to the
// generic executable icon.
func (e Entry) Render() string {
	icon := e.Icon
	if icon == "" {
		icon = FallbackIcon
	}
	return fmt.Sprintf(entryTemplate, e.Name, e.Exec, icon, e.Category)
}
