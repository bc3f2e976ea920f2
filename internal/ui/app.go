package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gifrunner/internal/anim"
	"github.com/ytget/gifrunner/internal/config"
	"github.com/ytget/gifrunner/internal/model"
	"github.com/ytget/gifrunner/internal/overlay"
	"github.com/ytget/gifrunner/internal/picker"
	"github.com/ytget/gifrunner/internal/platform"
)

// Overrides replace stored preferences for a single run; zero values keep
// the stored ones
type Overrides struct {
	MinInterval  time.Duration
	ScalePercent int
	StartLocked  *bool
}

// App wires overlay windows, the picker loop and the host window together
type App struct {
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	overrides    Overrides

	registry  *overlay.Registry
	scheduler overlay.Scheduler
	loop      *picker.Loop

	// host parents the file dialog and carries the main menu
	host         fyne.Window
	hintLabel    *widget.Label
	statusLabel  *widget.Label
	windowsLabel *widget.Label
	openBtn      *widget.Button
	closeAllBtn  *widget.Button

	quitting bool
}

// NewApp creates the UI for a; nothing is shown until Run
func NewApp(a fyne.App, settings *config.Settings, overrides Overrides) *App {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &App{
		app:          a,
		settings:     settings,
		localization: localization,
		overrides:    overrides,
		registry:     overlay.NewRegistry(),
		scheduler:    overlay.NewScheduler(fyne.Do),
	}

	ui.host = a.NewWindow(localization.GetText(KeyAppTitle))
	ui.host.SetIcon(AppIconResource())
	ui.host.Resize(HostWindowSize())
	ui.host.SetCloseIntercept(ui.onHostClose)

	ui.loop = picker.NewLoop(
		newFilePrompter(ui.host, settings, localization),
		ui.OpenOverlay,
		picker.Policy{RepromptOnError: settings.GetRepromptOnError()},
	)
	ui.loop.SetStopCallback(ui.onPickerStopped)
	ui.loop.SetFailureCallback(ui.onOpenFailed)

	ui.registry.SetAddCallback(ui.onWindowsChanged)
	ui.registry.SetRemoveCallback(ui.onWindowsChanged)
	ui.registry.SetEmptyCallback(ui.onAllWindowsClosed)

	if !platform.WindowPositioningSupported {
		log.Printf("this display server does not let windows be placed, dragging is disabled")
	}

	ui.setupUI()
	return ui
}

// setupUI creates the host window content
func (ui *App) setupUI() {
	ui.createMenu()

	ui.hintLabel = widget.NewLabel("")
	ui.hintLabel.Wrapping = fyne.TextWrapWord

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Wrapping = fyne.TextWrapWord
	ui.statusLabel.Hide()

	ui.windowsLabel = widget.NewLabel("")
	ui.windowsLabel.Wrapping = fyne.TextWrapWord

	ui.openBtn = widget.NewButton("", ui.StartPicker)
	ui.openBtn.Importance = widget.HighImportance

	ui.closeAllBtn = widget.NewButton("", ui.registry.CloseAll)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	buttons := container.NewHBox(ui.openBtn, ui.closeAllBtn, settingsBtn)
	ui.host.SetContent(container.NewVBox(
		ui.hintLabel,
		buttons,
		ui.statusLabel,
		widget.NewSeparator(),
		ui.windowsLabel,
	))

	ui.refreshUITexts()
}

// createMenu creates the host window menu
func (ui *App) createMenu() {
	t := ui.localization.GetText

	openItem := fyne.NewMenuItem(t(KeyOpenGIF), ui.StartPicker)
	closeAllItem := fyne.NewMenuItem(t(KeyCloseAll), ui.registry.CloseAll)
	settingsItem := fyne.NewMenuItem(t(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(t(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(t(KeyFile), openItem, closeAllItem, fyne.NewMenuItemSeparator(), settingsItem),
		languageMenu,
	)

	ui.host.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change; open overlays keep their labels
func (ui *App) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all host texts with current language
func (ui *App) refreshUITexts() {
	t := ui.localization.GetText

	ui.host.SetTitle(t(KeyAppTitle))
	ui.hintLabel.SetText(t(KeyPickerHint))
	ui.openBtn.SetText(IconOpen + " " + t(KeyOpenGIF))
	ui.closeAllBtn.SetText(IconClose + " " + t(KeyCloseAll))
	ui.refreshWindowList()
}

// refreshWindowList lists the titles of the live overlays
func (ui *App) refreshWindowList() {
	snapshots := ui.registry.Snapshots()
	if len(snapshots) == 0 {
		ui.windowsLabel.SetText("")
		ui.closeAllBtn.Disable()
		return
	}

	titles := make([]string, 0, len(snapshots))
	for _, s := range snapshots {
		title := s.GetDisplayTitle() + " " + s.GetSizeString()
		if s.Locked {
			title = IconLock + " " + title
		}
		titles = append(titles, title)
	}

	ui.windowsLabel.SetText(fmt.Sprintf("%s (%d): %s",
		ui.localization.GetText(KeyOpenWindows), len(snapshots), strings.Join(titles, ", ")))
	ui.closeAllBtn.Enable()
}

// OpenOverlay decodes path and opens it in a new overlay window. Unreadable
// paths and undecodable files both fail with *anim.DecodeError.
func (ui *App) OpenOverlay(path string) error {
	if err := platform.ValidateGIFPath(path); err != nil {
		return &anim.DecodeError{Path: path, Err: err}
	}

	opts := ui.registry.Track(overlay.Options{
		MinInterval:  ui.minInterval(),
		ScalePercent: ui.scalePercent(),
		StartLocked:  ui.startLocked(),
		Labels:       ui.localization.OverlayLabels(),
		OnClose:      ui.onWindowClosed,
	})

	var created *overlayWindow
	factory := func(spec overlay.SurfaceSpec) (overlay.Surface, error) {
		created = newOverlayWindow(ui.app, spec)
		return created, nil
	}

	c, err := overlay.Open(path, factory, ui.scheduler, opts)
	if err != nil {
		return err
	}
	created.bind(c)

	if err := ui.registry.Add(c); err != nil {
		c.Close()
		return fmt.Errorf("failed to register window for %s: %w", path, err)
	}

	log.Printf("opened %s as window %s", filepath.Base(path), c.ID())
	return nil
}

// StartPicker shows the host window and starts prompting for GIFs
func (ui *App) StartPicker() {
	ui.statusLabel.Hide()
	ui.loop.SetPolicy(picker.Policy{RepromptOnError: ui.settings.GetRepromptOnError()})
	ui.host.Show()
	ui.loop.Start()
}

// Windows returns snapshots of the live overlay windows
func (ui *App) Windows() []model.OverlayWindow {
	return ui.registry.Snapshots()
}

// Run opens paths, optionally starts the picker, and blocks in the event loop
func (ui *App) Run(paths []string, pick bool) {
	ui.OpenAll(paths)

	if pick || ui.registry.Len() == 0 {
		ui.StartPicker()
	}

	ui.app.Run()
}

// OpenAll opens every path, logging the failures
func (ui *App) OpenAll(paths []string) int {
	opened := 0
	for _, path := range paths {
		if err := ui.OpenOverlay(path); err != nil {
			ui.onOpenFailed(path, err)
			continue
		}
		opened++
	}
	return opened
}

func (ui *App) minInterval() time.Duration {
	if ui.overrides.MinInterval > 0 {
		return ui.overrides.MinInterval
	}
	return ui.settings.GetMinFrameInterval()
}

func (ui *App) scalePercent() int {
	if ui.overrides.ScalePercent > 0 {
		return ui.overrides.ScalePercent
	}
	return ui.settings.GetScalePercent()
}

func (ui *App) startLocked() bool {
	if ui.overrides.StartLocked != nil {
		return *ui.overrides.StartLocked
	}
	return ui.settings.GetStartLocked()
}

func (ui *App) onWindowsChanged(model.OverlayWindow) {
	ui.refreshWindowList()
}

func (ui *App) onWindowClosed(c *overlay.Controller) {
	log.Printf("closed window %s (%s)", c.ID(), filepath.Base(c.Path()))
}

func (ui *App) onOpenFailed(path string, err error) {
	log.Printf("failed to open %s: %v", path, err)
	ui.statusLabel.SetText(fmt.Sprintf("%s %s %s: %v",
		IconError, ui.localization.GetText(KeyOpenFailed), filepath.Base(path), err))
	ui.statusLabel.Show()
}

func (ui *App) onPickerStopped() {
	if err := ui.loop.LastError(); err != nil {
		log.Printf("picker stopped: %v", err)
	}

	// Keep the host around as the only way back into the picker
	if !ui.settings.GetQuitWhenIdle() {
		return
	}
	if ui.registry.Len() > 0 {
		ui.host.Hide()
		return
	}
	ui.quitIfIdle()
}

func (ui *App) onAllWindowsClosed() {
	ui.quitIfIdle()
}

// quitIfIdle quits when nothing is left for the user to interact with
func (ui *App) quitIfIdle() {
	if ui.quitting || ui.loop.Running() || ui.registry.Len() > 0 {
		return
	}
	if !ui.settings.GetQuitWhenIdle() {
		return
	}

	ui.quitting = true
	log.Printf("no overlay windows left, quitting")
	ui.app.Quit()
}

// onHostClose hides the host; the process lives on while overlays are open
func (ui *App) onHostClose() {
	ui.loop.Stop()
	ui.host.Hide()

	if ui.registry.Len() == 0 {
		ui.quitting = true
		ui.app.Quit()
	}
}

// onShowSettings shows the settings dialog
func (ui *App) onShowSettings() {
	ui.host.Show()
	ShowSettingsDialog(ui.host, ui.settings, ui.localization, func() {
		ui.loop.SetPolicy(picker.Policy{RepromptOnError: ui.settings.GetRepromptOnError()})
		if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
			ui.localization.SetLanguage(lang)
			ui.refreshUITexts()
			ui.createMenu()
		}
	})
}
