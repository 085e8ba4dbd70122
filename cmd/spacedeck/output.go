package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/spacedeck/internal/fetch"
)

type outputOptions struct {
	jsonOutput bool
}

func (o *outputOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.jsonOutput, "json", false, "Output in JSON format")
}

// fetchOnce runs one request through a lifecycle so command output uses the
// same failure messages as the terminal UI.
func fetchOnce[T any](s *session, key, failure, operation string, fn fetch.Func[T]) (T, error) {
	l := fetch.New[T](key, failure)
	l.Run(s.ctx, fn)

	data, ok := l.Data()
	if !ok {
		s.log.Error(s.ctx, "request failed", "op", key, "error", l.Err())
		return data, newCommandError(operation, l.Message(), l.Err(), backendSuggestion(s))
	}
	s.log.Debug(s.ctx, "request succeeded", "op", key)
	return data, nil
}

func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(borderFor(w)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// borderFor draws box characters on terminals and plain ASCII elsewhere.
func borderFor(w io.Writer) lipgloss.Border {
	if supportsUnicode(w) {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.ASCIIBorder()
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
