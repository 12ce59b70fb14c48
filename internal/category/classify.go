// Package category infers freedesktop menu categories from application names.
package category

import "strings"

// DefaultCategory is returned when no keyword group matches.
const DefaultCategory = "Utility;"

// group maps a keyword set to a category string.
type group struct {
	keywords []string
	category string
}

// groups are tested in order and the first substring match wins. The sets
// overlap ("firefox-Games-edition" hits both browser and game keywords), so
// order is part of the contract.
var groups = []group{
	{
		keywords: []string{"chrome", "firefox", "edge", "brave", "opera", "safari", "chromium", "librewolf", "libre"},
		category: "Network;WebBrowser;",
	},
	{
		keywords: []string{"code", "studio", "ide", "editor", "vim", "emacs", "sublime"},
		category: "Development;IDE;",
	},
	{
		keywords: []string{"player", "vlc", "mpv", "kodi", "spotify", "audacity"},
		category: "AudioVideo;Audio;Video;",
	},
	{
		keywords: []string{"gimp", "inkscape", "blender", "krita", "darktable"},
		category: "Graphics;2DGraphics;3DGraphics;",
	},
	{
		keywords: []string{"libreoffice", "openoffice", "word", "excel", "powerpoint"},
		category: "Office;",
	},
	{
		keywords: []string{"game", "steam", "minecraft", "roblox"},
		category: "Game;",
	},
	{
		keywords: []string{"terminal", "system", "admin", "disk", "backup"},
		category: "System;",
	},
}

// Classify maps an application name to a semicolon-terminated freedesktop
// category string. Matching is case-insensitive substring containment; it
// always returns a value.
func Classify(appName string) string {
	name := strings.ToLower(appName)
	for _, g := range groups {
		for _, kw := range g.keywords {
			if strings.Contains(name, kw) {
				return g.category
			}
		}
	}
	return DefaultCategory
}
