package commands

import (
	"fmt"
	"io"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/tmorrison/skillcheck/internal/discovery"
	"github.com/tmorrison/skillcheck/internal/errors"
)

func runInteractivePick(w io.Writer, entries []discovery.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No skills found.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			e := entries[i]
			if e.ParseErr != nil {
				return fmt.Sprintf("(invalid) %s", e.Path)
			}
			return fmt.Sprintf("%s: %s", e.Skill.Name, truncate(e.Skill.Description, 60))
		},
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i == -1 {
				return ""
			}
			e := entries[i]
			if e.ParseErr != nil {
				return fmt.Sprintf("Path: %s\n\nParse error:\n%v", e.Path, e.ParseErr)
			}
			return fmt.Sprintf("Name: %s\nPath: %s\n\nDescription:\n%s",
				e.Skill.Name,
				e.Path,
				e.Skill.Description,
			)
		}),
	)

	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive pick failed")
	}

	e := entries[idx]
	if e.ParseErr != nil {
		fmt.Fprintf(w, "Selected: %s (failed to parse)\n", e.Path)
		fmt.Fprintf(w, "Error: %v\n", e.ParseErr)
		return nil
	}

	fmt.Fprintf(w, "Selected: %s\n", e.Skill.Name)
	fmt.Fprintf(w, "Path: %s\n", e.Path)
	fmt.Fprintf(w, "Description: %s\n", e.Skill.Description)
	return nil
}
