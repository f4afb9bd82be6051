package formatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tunebox/internal/models"
)

func testSongs() []models.Song {
	return []models.Song{
		{ID: 1, Title: "Song One", Artist: "Artist One", Preview: "https://cdn.example.com/1.mp3"},
		{ID: 2, Title: "Song Two", Artist: "Artist Two", Preview: "https://cdn.example.com/2.mp3"},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(testSongs())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "ID,Title,Artist,Preview") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "Song One") {
			t.Errorf("CSV missing first title")
		}
		if !strings.Contains(output, "Artist Two") {
			t.Errorf("CSV missing second artist")
		}
		if !strings.Contains(output, "https://cdn.example.com/1.mp3") {
			t.Errorf("CSV missing preview URL")
		}
	})

	t.Run("ExportToCSVEmpty", func(t *testing.T) {
		data, err := ExportToCSV(nil)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 1 {
			t.Errorf("expected only the header row, got %d lines", len(lines))
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown("Liked Songs", testSongs(), "cover.jpg")
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "# Liked Songs") {
			t.Errorf("Markdown missing title heading")
		}
		if !strings.Contains(output, "![Cover](cover.jpg)") {
			t.Errorf("Markdown missing cover image")
		}
		if !strings.Contains(output, "**Songs**: 2") {
			t.Errorf("Markdown missing song count")
		}
		if !strings.Contains(output, "1. Artist One - Song One") {
			t.Errorf("Markdown missing numbered song entry")
		}
		if !strings.Contains(output, "[preview](https://cdn.example.com/2.mp3)") {
			t.Errorf("Markdown missing preview link")
		}
	})

	t.Run("ExportToMarkdownNoImage", func(t *testing.T) {
		data, err := ExportToMarkdown("Liked Songs", testSongs(), "")
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		if strings.Contains(string(data), "![Cover]") {
			t.Errorf("Markdown has an image tag without a cover")
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText("Catalog", testSongs())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)

		if !strings.Contains(output, "Catalog") {
			t.Errorf("text missing title")
		}
		if !strings.Contains(output, "Songs: 2") {
			t.Errorf("text missing song count")
		}
		if !strings.Contains(output, "2. Artist Two - Song Two") {
			t.Errorf("text missing numbered song entry")
		}
	})
}

func TestWriters(t *testing.T) {
	t.Run("WriteCSVExport", func(t *testing.T) {
		base := filepath.Join(t.TempDir(), "liked")

		files, err := WriteCSVExport("liked", testSongs(), base)
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}
		if len(files) != 2 {
			t.Fatalf("expected 2 files, got %d", len(files))
		}

		for _, file := range files {
			if _, err := os.Stat(file); err != nil {
				t.Errorf("expected file %s: %v", file, err)
			}
		}

		csvData, err := os.ReadFile(files[0])
		if err != nil {
			t.Fatalf("failed to read CSV: %v", err)
		}
		if !strings.Contains(string(csvData), "Song One") {
			t.Errorf("written CSV missing song data")
		}
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "liked")

		result, err := WriteMarkdownExport("Liked Songs", testSongs(), dir, "")
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}

		if result.Directory != dir {
			t.Errorf("unexpected directory %s", result.Directory)
		}
		if result.CoverImage != "" {
			t.Errorf("cover image reported without a URL")
		}

		mdData, err := os.ReadFile(filepath.Join(dir, "README.md"))
		if err != nil {
			t.Fatalf("failed to read README.md: %v", err)
		}
		if !strings.Contains(string(mdData), "# Liked Songs") {
			t.Errorf("written Markdown missing heading")
		}
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.txt")

		written, err := WriteTextExport("Catalog", testSongs(), path)
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if written != path {
			t.Errorf("unexpected path %s", written)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read text file: %v", err)
		}
		if !strings.Contains(string(data), "1. Artist One - Song One") {
			t.Errorf("written text missing song entry")
		}
	})
}

func TestDownloadImage(t *testing.T) {
	if _, err := DownloadImage(""); err == nil {
		t.Error("expected error for empty URL")
	}
}
