// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joonholee/siganpyo/internal/catalog"
)

// catalogTimeout bounds background catalog reads.
const catalogTimeout = 5 * time.Second

// CatalogLoadedMsg is sent when the lecture catalog is loaded.
type CatalogLoadedMsg struct {
	Entries []catalog.Entry
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadCatalog loads the lecture catalog in the background.
func LoadCatalog(repo catalog.Repository) tea.Cmd {
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), catalogTimeout)
		defer cancel()

		entries, err := repo.List(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return CatalogLoadedMsg{Entries: entries}
	}
}

// CopyText writes text to the system clipboard.
func CopyText(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: err}
		}
		return StatusMsgCmd{Msg: "클립보드에 복사됨"}
	}
}

// Status returns a command that shows a temporary status message.
func Status(msg string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}

// Err returns a command that surfaces an error in the status line.
func Err(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrMsg{Err: err}
	}
}
