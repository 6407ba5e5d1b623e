package ui

import (
	"fmt"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/primetap/prime-tap/internal/config"
	"github.com/primetap/prime-tap/internal/model"
	"github.com/primetap/prime-tap/internal/quiz"
)

// RootUI represents the main game screen
type RootUI struct {
	window       fyne.Window
	engine       quiz.Engine
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI

	// Widgets bound to engine snapshots
	numberText     *canvas.Text
	feedbackText   *canvas.Text
	countdownBar   *widget.ProgressBar
	countdownLabel *widget.Label
	scoreLabel     *widget.Label
	primeBtn       *widget.Button
	notPrimeBtn    *widget.Button

	summaryDialog  *SummaryDialog
	summaryShowing bool // guards duplicate summary popups across snapshots
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, engine quiz.Engine) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		engine:       engine,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for engine updates
	ui.engine.SetUpdateCallback(ui.onEngineUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Big number display
	ui.numberText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ui.numberText.TextSize = NumberTextSize
	ui.numberText.TextStyle = fyne.TextStyle{Bold: true}
	ui.numberText.Alignment = fyne.TextAlignCenter

	// Feedback line under the number (correct/wrong/timeout)
	ui.feedbackText = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	ui.feedbackText.TextSize = FeedbackTextSize
	ui.feedbackText.Alignment = fyne.TextAlignCenter

	// Countdown
	ui.countdownBar = widget.NewProgressBar()
	ui.countdownBar.Min = 0
	ui.countdownBar.Max = float64(ui.settings.GetCountdownSeconds())
	ui.countdownBar.TextFormatter = func() string { return "" }
	ui.countdownLabel = widget.NewLabel("")
	ui.countdownLabel.Alignment = fyne.TextAlignCenter

	// Answer buttons
	ui.primeBtn = ui.mobile.CreateAnswerButton(ui.localization.GetText(KeyPrime), func() {
		ui.onSelectAnswer(true)
	})
	ui.notPrimeBtn = ui.mobile.CreateAnswerButton(ui.localization.GetText(KeyNotPrime), func() {
		ui.onSelectAnswer(false)
	})

	// Score row
	ui.scoreLabel = widget.NewLabel("")
	ui.scoreLabel.Alignment = fyne.TextAlignLeading

	// Settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Summary dialog
	ui.summaryDialog = NewSummaryDialog(ui.window, ui.localization, ui.onSummaryDismissed)

	// Top panel: score on the left, settings on the right
	topPanel := container.NewBorder(nil, nil, ui.scoreLabel, settingsBtn)

	// Center: the number with its feedback line
	center := container.NewVBox(
		layoutSpacer(),
		ui.numberText,
		ui.feedbackText,
		layoutSpacer(),
	)

	// Bottom: countdown above the answer buttons
	countdownRow := container.NewBorder(nil, nil, nil, ui.countdownLabel, ui.countdownBar)
	answerRow := ui.mobile.CreateAnswerRow(ui.primeBtn, ui.notPrimeBtn)
	bottomPanel := container.NewVBox(countdownRow, answerRow)

	content := container.NewBorder(
		topPanel,    // top
		bottomPanel, // bottom
		nil,         // left
		nil,         // right
		center,      // center
	)

	ui.window.SetContent(content)

	// Paint the initial state
	ui.render(ui.engine.Snapshot())

	log.Printf("UI setup completed successfully")
}

// layoutSpacer returns a vertical filler for the center stack
func layoutSpacer() fyne.CanvasObject {
	return widget.NewLabel("")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Update UI elements
	ui.primeBtn.SetText(ui.localization.GetText(KeyPrime))
	ui.notPrimeBtn.SetText(ui.localization.GetText(KeyNotPrime))

	// Re-render state-derived texts
	ui.render(ui.engine.Snapshot())
}

// onSelectAnswer forwards the player's judgment to the engine. The engine
// ignores answers arriving after the round resolved, so no guarding is
// needed here.
func (ui *RootUI) onSelectAnswer(isPrime bool) {
	log.Printf("Answer selected: isPrime=%v", isPrime)
	ui.engine.SelectAnswer(isPrime)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	dialog := NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved)
	dialog.Show()
}

// onSettingsSaved applies saved settings to the engine and the UI
func (ui *RootUI) onSettingsSaved() {
	ui.engine.ApplyOptions(quiz.Options{
		CountdownSeconds: ui.settings.GetCountdownSeconds(),
		SummaryInterval:  ui.settings.GetSummaryInterval(),
	})

	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	log.Printf("Settings applied: countdown=%ds interval=%d",
		ui.settings.GetCountdownSeconds(), ui.settings.GetSummaryInterval())
}

// onSummaryDismissed handles the Continue button of the summary dialog
func (ui *RootUI) onSummaryDismissed() {
	ui.summaryShowing = false
	ui.engine.DismissSummary()
}

// onEngineUpdate handles state updates from the quiz engine. Updates arrive
// from timer callbacks, so rendering is dispatched onto the UI thread.
func (ui *RootUI) onEngineUpdate(snap quiz.Snapshot) {
	log.Printf("Engine update: round=%s number=%d remaining=%d answer=%s total=%d summary=%v",
		snap.RoundID, snap.Number, snap.TimeRemaining, snap.Answer, snap.TotalAttempts, snap.SummaryVisible)

	fyne.Do(func() {
		ui.render(snap)
	})
}

// render paints one engine snapshot
func (ui *RootUI) render(snap quiz.Snapshot) {
	// Number and its state color; blank before the first round starts
	if snap.RoundID == "" {
		ui.numberText.Text = ""
	} else {
		ui.numberText.Text = strconv.Itoa(snap.Number)
	}
	switch snap.Answer {
	case model.AnswerCorrect:
		ui.numberText.Color = theme.Color(theme.ColorNameSuccess)
	case model.AnswerIncorrect:
		ui.numberText.Color = theme.Color(theme.ColorNameError)
	default:
		ui.numberText.Color = theme.Color(theme.ColorNameForeground)
	}
	ui.numberText.Refresh()

	// Feedback line
	ui.feedbackText.Text = ui.feedbackFor(snap)
	ui.feedbackText.Color = ui.numberText.Color
	ui.feedbackText.Refresh()

	// Countdown
	ui.countdownBar.Max = float64(ui.settings.GetCountdownSeconds())
	ui.countdownBar.SetValue(float64(snap.TimeRemaining))
	ui.countdownLabel.SetText(fmt.Sprintf(CountdownLabelFormat, snap.TimeRemaining))

	// Score row
	ui.scoreLabel.SetText(fmt.Sprintf("%s %d%s%s %d",
		IconCorrect, snap.CorrectCount, MiddleDotSeparator, IconWrong, snap.WrongCount))

	// Buttons answer exactly one unanswered round
	if snap.Answer == model.AnswerUnanswered && !snap.SummaryVisible {
		ui.primeBtn.Enable()
		ui.notPrimeBtn.Enable()
	} else {
		ui.primeBtn.Disable()
		ui.notPrimeBtn.Disable()
	}

	// Summary dialog
	if snap.SummaryVisible && !ui.summaryShowing {
		ui.summaryShowing = true
		ui.summaryDialog.Show(snap)
	}
}

// feedbackFor builds the feedback line for a snapshot
func (ui *RootUI) feedbackFor(snap quiz.Snapshot) string {
	factKey := KeyFactNotPrime
	if snap.NumberIsPrime {
		factKey = KeyFactPrime
	}
	fact := fmt.Sprintf(ui.localization.GetText(factKey), snap.Number)

	switch snap.Answer {
	case model.AnswerCorrect:
		return ui.localization.GetText(KeyCorrect)
	case model.AnswerIncorrect:
		if snap.TimeRemaining == 0 {
			// Countdown expiry, not a wrong tap
			if ui.settings.GetRevealOnTimeout() {
				return ui.localization.GetText(KeyTimeUp) + MiddleDotSeparator + fact
			}
			return ui.localization.GetText(KeyTimeUp)
		}
		return ui.localization.GetText(KeyWrong) + MiddleDotSeparator + fact
	default:
		return ""
	}
}
