package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/primetap/prime-tap/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	countdownEntry *widget.Entry
	intervalEntry  *widget.Entry
	revealCheck    *widget.Check
	languageSelect *widget.Select
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

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Countdown length
	sd.countdownEntry = widget.NewEntry()
	sd.countdownEntry.SetPlaceHolder(
		strconv.Itoa(config.MinCountdownSeconds) + "-" + strconv.Itoa(config.MaxCountdownSeconds))

	// Summary interval
	sd.intervalEntry = widget.NewEntry()
	sd.intervalEntry.SetPlaceHolder(
		strconv.Itoa(config.MinSummaryInterval) + "-" + strconv.Itoa(config.MaxSummaryInterval))

	// Reveal-on-timeout toggle
	sd.revealCheck = widget.NewCheck(sd.localization.GetText(KeyRevealOnTimeout), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyCountdownSeconds)),
		sd.countdownEntry,

		widget.NewLabel(sd.localization.GetText(KeySummaryInterval)),
		sd.intervalEntry,

		sd.revealCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(360, 320))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.countdownEntry.SetText(strconv.Itoa(sd.settings.GetCountdownSeconds()))
	sd.intervalEntry.SetText(strconv.Itoa(sd.settings.GetSummaryInterval()))
	sd.revealCheck.SetChecked(sd.settings.GetRevealOnTimeout())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Validate and save countdown length
	if countdown, err := strconv.Atoi(sd.countdownEntry.Text); err == nil {
		sd.settings.SetCountdownSeconds(countdown)
	}

	// Validate and save summary interval
	if interval, err := strconv.Atoi(sd.intervalEntry.Text); err == nil {
		sd.settings.SetSummaryInterval(interval)
	}

	// Save reveal toggle
	sd.settings.SetRevealOnTimeout(sd.revealCheck.Checked)

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
