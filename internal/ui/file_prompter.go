package ui

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/gifrunner/internal/config"
	"github.com/ytget/gifrunner/internal/picker"
	"github.com/ytget/gifrunner/internal/platform"
)

var _ picker.Prompter = (*filePrompter)(nil)

// filePrompter asks for one GIF with the Fyne file dialog, parented to the
// host window. It starts in the last used directory and remembers the new one.
type filePrompter struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
}

func newFilePrompter(window fyne.Window, settings *config.Settings, localization *Localization) *filePrompter {
	return &filePrompter{
		window:       window,
		settings:     settings,
		localization: localization,
	}
}

// Prompt implements picker.Prompter
func (p *filePrompter) Prompt(done func(path string, err error)) {
	p.window.SetTitle(p.localization.GetText(KeyChooseGIF))
	p.window.Show()

	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			done("", fmt.Errorf("file dialog: %w", err))
			return
		}
		if reader == nil {
			// Cancelled
			done("", nil)
			return
		}

		path := reader.URI().Path()
		if cerr := reader.Close(); cerr != nil {
			log.Printf("failed to close %s: %v", path, cerr)
		}

		p.settings.SetLastDirectory(filepath.Dir(path))
		done(path, nil)
	}, p.window)

	fd.SetFilter(storage.NewExtensionFileFilter([]string{platform.GIFExtension}))
	if dir := platform.ExistingDir(p.settings.GetLastDirectory()); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fd.SetLocation(lister)
		} else {
			log.Printf("cannot start file dialog in %s: %v", dir, err)
		}
	}

	fd.Resize(p.window.Canvas().Size())
	fd.Show()
}
