package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/client/services"
	"github.com/dmitrijs2005/gophnotes/internal/common"
)

// promptID asks the user for a numeric note id.
func (a *App) promptID(prompt string) (int64, error) {
	s, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// List fetches and prints a short line per note. The list is re-fetched on
// every call; nothing is cached between commands.
func (a *App) List(ctx context.Context) error {
	notes, err := a.notes.List(ctx)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	for _, n := range notes {
		line := fmt.Sprintf("[%d] %s", n.ID, n.Title)
		if len(n.Tags) > 0 {
			line += fmt.Sprintf("  (%s)", services.FormatTags(n.Tags))
		}
		fmt.Println(line)
	}
	fmt.Printf("%d note(s)\n", len(notes))
	return nil
}

// Show fetches and displays a single note by id.
func (a *App) Show(ctx context.Context) error {
	id, err := a.promptID("Enter note id to show")
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	note, err := a.notes.Get(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	fmt.Printf("[%d] %s\n", note.ID, note.Title)
	if len(note.Tags) > 0 {
		fmt.Printf("Tags: %s\n", services.FormatTags(note.Tags))
	}
	if note.Content != "" {
		fmt.Println(note.Content)
	}
	fmt.Printf("Created: %s  Updated: %s\n", note.CreatedAt, note.UpdatedAt)
	return nil
}

// Add collects title, content and comma-separated tags and creates a note.
// An empty title is rejected before any request is issued.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		log.Printf("Error: %s", common.ErrEmptyTitle.Error())
		return common.ErrEmptyTitle
	}

	content, err := getMultiline(a.reader, "Enter content:", os.Stdout)
	if err != nil {
		return err
	}

	tagsLine, err := getSimpleText(a.reader, "Enter tags (comma-separated)", os.Stdout)
	if err != nil {
		return err
	}

	note, err := a.notes.Create(ctx, title, content, services.ParseTags(tagsLine))
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	log.Printf("Created note %d", note.ID)
	return nil
}

// Edit fetches a note and prompts for replacement values. Pressing Enter
// keeps the current value; entering "-" clears content or tags. The update
// replaces all three fields. On failure the edited input is discarded and
// the server copy stays authoritative.
func (a *App) Edit(ctx context.Context) error {
	id, err := a.promptID("Enter note id to edit")
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	note, err := a.notes.Get(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s] (Enter keeps current)", note.Title), os.Stdout)
	if err != nil {
		return err
	}
	if title == "" {
		title = note.Title
	}

	content, err := getMultiline(a.reader, "New content (empty keeps current, '-' clears):", os.Stdout)
	if err != nil {
		return err
	}
	switch content {
	case "":
		content = note.Content
	case "-":
		content = ""
	}

	tagsLine, err := getSimpleText(a.reader,
		fmt.Sprintf("Tags [%s] (Enter keeps current, '-' clears)", services.FormatTags(note.Tags)), os.Stdout)
	if err != nil {
		return err
	}
	tags := note.Tags
	switch tagsLine {
	case "":
	case "-":
		tags = []string{}
	default:
		tags = services.ParseTags(tagsLine)
	}

	updated, err := a.notes.Update(ctx, id, title, content, tags)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	log.Printf("Updated note %d", updated.ID)
	return nil
}

// Delete removes a note by id and prints the server's confirmation.
func (a *App) Delete(ctx context.Context) error {
	id, err := a.promptID("Enter note id to delete")
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	msg, err := a.notes.Delete(ctx, id)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	log.Println(msg)
	return nil
}
