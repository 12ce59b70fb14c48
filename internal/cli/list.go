package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated desktop entries",
	Long: `List the desktop entries in the applications directory with their
icon identifiers and menu categories.`,
	RunE: runList,
}

// listedEntry is the subset of a desktop entry shown by list.
type listedEntry struct {
	File       string
	Name       string
	Icon       string
	Categories string
}

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFD7"))
	listNameStyle   = lipgloss.NewStyle().Bold(true)
	listDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C"))
)

func runList(cmd *cobra.Command, args []string) error {
	entries, err := readEntries(cfg.ApplicationsDir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No desktop entries found.")
		return nil
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	printEntries(os.Stdout, entries, styled)
	return nil
}

// readEntries parses every .desktop file in dir, in filename order.
func readEntries(dir string) ([]listedEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read applications dir: %w", err)
	}

	var entries []listedEntry
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".desktop") {
			continue
		}
		e, err := parseEntryFile(filepath.Join(dir, de.Name()))
		if err != nil {
			logger.Warn("skipping unreadable entry", "file", de.Name(), "error", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseEntryFile(path string) (listedEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return listedEntry{}, err
	}

	e := listedEntry{File: filepath.Base(path)}
	for _, line := range strings.Split(string(data), "\n") {
		switch {
		case strings.HasPrefix(line, "Name="):
			e.Name = strings.TrimPrefix(line, "Name=")
		case strings.HasPrefix(line, "Icon="):
			e.Icon = strings.TrimPrefix(line, "Icon=")
		case strings.HasPrefix(line, "Categories="):
			e.Categories = strings.TrimPrefix(line, "Categories=")
		}
	}
	return e, nil
}

// printEntries renders an aligned table. Padding happens before styling so
// ANSI escapes do not skew the column widths.
func printEntries(w io.Writer, entries []listedEntry, styled bool) {
	nameWidth, iconWidth := len("NAME"), len("ICON")
	for _, e := range entries {
		nameWidth = max(nameWidth, len(e.Name))
		iconWidth = max(iconWidth, len(e.Icon))
	}

	style := func(s string, st lipgloss.Style) string {
		if !styled {
			return s
		}
		return st.Render(s)
	}

	header := fmt.Sprintf("%-*s  %-*s  %s", nameWidth, "NAME", iconWidth, "ICON", "CATEGORIES")
	fmt.Fprintln(w, style(header, listHeaderStyle))

	for _, e := range entries {
		name := fmt.Sprintf("%-*s", nameWidth, e.Name)
		iconCol := fmt.Sprintf("%-*s", iconWidth, e.Icon)
		fmt.Fprintf(w, "%s  %s  %s\n",
			style(name, listNameStyle),
			iconCol,
			style(e.Categories, listDimStyle))
	}
}
