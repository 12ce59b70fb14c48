package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestEntry(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o755); err != nil {
		t.Fatal(err)
	}
}

func TestReadEntries(t *testing.T) {
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	dir := t.TempDir()

	writeTestEntry(t, dir, "firefox.desktop", `[Desktop Entry]
Type=Application
Name=firefox
Comment=AppImage Application
Exec=/x/firefox.AppImage %u
Icon=firefox
Terminal=false
Categories=Network;WebBrowser;
`)
	writeTestEntry(t, dir, "vlc.desktop", `[Desktop Entry]
Name=vlc
Icon=application-x-executable
Categories=AudioVideo;Audio;Video;
`)
	writeTestEntry(t, dir, "ignored.txt", "not an entry")

	entries, err := readEntries(dir)
	if err != nil {
		t.Fatalf("readEntries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("readEntries() found %d entries, want 2", len(entries))
	}

	if entries[0].Name != "firefox" || entries[0].Icon != "firefox" || entries[0].Categories != "Network;WebBrowser;" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Icon != "application-x-executable" {
		t.Errorf("second entry icon = %q, want fallback", entries[1].Icon)
	}
}

func TestReadEntriesMissingDir(t *testing.T) {
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	entries, err := readEntries(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("readEntries() on missing dir error = %v, want nil", err)
	}
	if entries != nil {
		t.Errorf("readEntries() = %v, want nil", entries)
	}
}

func TestPrintEntriesPlain(t *testing.T) {
	var buf bytes.Buffer
	printEntries(&buf, []listedEntry{
		{Name: "firefox", Icon: "firefox", Categories: "Network;WebBrowser;"},
		{Name: "a", Icon: "application-x-executable", Categories: "Utility;"},
	}, false)

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("printEntries() wrote %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "NAME") {
		t.Errorf("header = %q", lines[0])
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain output should not contain ANSI escapes")
	}
	// Columns align on the longest name.
	if !strings.Contains(lines[2], "a        application-x-executable") {
		t.Errorf("unexpected column alignment: %q", lines[2])
	}
}
