package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/gifrunner/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	minIntervalEntry *widget.Entry
	scaleSelect      *widget.Select
	repromptCheck    *widget.Check
	quitWhenIdle     *widget.Check
	startLocked      *widget.Check
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// ShowSettingsDialog creates the dialog, fills it from the stored settings and shows it
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.minIntervalEntry = widget.NewEntry()
	sd.minIntervalEntry.SetPlaceHolder(strconv.Itoa(config.MinFrameIntervalMs) + "-" + strconv.Itoa(config.MaxFrameIntervalMs))

	scaleOptions := []string{}
	for _, percent := range sd.settings.GetScaleOptions() {
		scaleOptions = append(scaleOptions, strconv.Itoa(percent))
	}
	sd.scaleSelect = widget.NewSelect(scaleOptions, nil)

	sd.repromptCheck = widget.NewCheck(t(KeyRepromptOnError), nil)
	sd.quitWhenIdle = widget.NewCheck(t(KeyQuitWhenIdle), nil)
	sd.startLocked = widget.NewCheck(t(KeyStartLocked), nil)

	// Language selection, sorted so the order is stable between openings
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = t(KeyLanguage)

	form := container.NewVBox(
		widget.NewLabel(t(KeyOverlaySettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyMinFrameInterval)+":"),
		sd.minIntervalEntry,

		widget.NewLabel(t(KeyScalePercent)+":"),
		sd.scaleSelect,

		sd.startLocked,
		sd.repromptCheck,
		sd.quitWhenIdle,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.minIntervalEntry.SetText(strconv.Itoa(int(sd.settings.GetMinFrameInterval().Milliseconds())))
	sd.scaleSelect.SetSelected(strconv.Itoa(sd.settings.GetScalePercent()))
	sd.repromptCheck.SetChecked(sd.settings.GetRepromptOnError())
	sd.quitWhenIdle.SetChecked(sd.settings.GetQuitWhenIdle())
	sd.startLocked.SetChecked(sd.settings.GetStartLocked())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Out-of-range values are clamped by Settings; garbage is ignored
	if ms, err := strconv.Atoi(sd.minIntervalEntry.Text); err == nil {
		sd.settings.SetMinFrameIntervalMs(ms)
	}

	if sd.scaleSelect.Selected != "" {
		if percent, err := strconv.Atoi(sd.scaleSelect.Selected); err == nil {
			sd.settings.SetScalePercent(percent)
		}
	}

	sd.settings.SetRepromptOnError(sd.repromptCheck.Checked)
	sd.settings.SetQuitWhenIdle(sd.quitWhenIdle.Checked)
	sd.settings.SetStartLocked(sd.startLocked.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
