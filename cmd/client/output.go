package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"notekeeper/internal/domain"

	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"

	previewLength = 100
)

func writeNotes(w io.Writer, notes []*domain.NoteResponse, format string) error {
	switch format {
	case outputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(notes)
	case outputYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		encoder.SetIndent(2)
		return encoder.Encode(notes)
	case outputText, "":
		if len(notes) == 0 {
			_, err := fmt.Fprintln(w, "There are no notes yet.")
			return err
		}
		for _, n := range notes {
			if _, err := fmt.Fprintf(w, "%s  %s\n    %s\n", n.ID, n.Title, preview(n.Content)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func writeNote(w io.Writer, note *domain.NoteResponse, format string) error {
	switch format {
	case outputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(note)
	case outputYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		encoder.SetIndent(2)
		return encoder.Encode(note)
	case outputText, "":
		_, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n", note.Title, note.ID, note.Content)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func preview(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	if utf8.RuneCountInString(content) <= previewLength {
		return content
	}
	return string([]rune(content)[:previewLength]) + "..."
}
