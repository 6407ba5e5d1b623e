package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/primetap/prime-tap/internal/quiz"
)

// SummaryDialog is the modal surfaced after every summary interval of
// resolved rounds. Dismissing it resets the tally and resumes play.
type SummaryDialog struct {
	window       fyne.Window
	localization *Localization
	onContinue   func()
}

// NewSummaryDialog creates a new summary dialog
func NewSummaryDialog(window fyne.Window, localization *Localization, onContinue func()) *SummaryDialog {
	return &SummaryDialog{
		window:       window,
		localization: localization,
		onContinue:   onContinue,
	}
}

// Show displays the accumulated score from the snapshot
func (sd *SummaryDialog) Show(snap quiz.Snapshot) {
	correctValue := widget.NewLabel(strconv.Itoa(snap.CorrectCount))
	correctValue.TextStyle = fyne.TextStyle{Bold: true}

	wrongValue := widget.NewLabel(strconv.Itoa(snap.WrongCount))
	wrongValue.TextStyle = fyne.TextStyle{Bold: true}

	accuracyValue := widget.NewLabel(fmt.Sprintf(AccuracyLabelFormat, snap.Accuracy*100))
	accuracyValue.TextStyle = fyne.TextStyle{Bold: true}

	rows := container.NewVBox(
		container.NewBorder(nil, nil,
			widget.NewLabel(IconCorrect+" "+sd.localization.GetText(KeyCorrectAnswers)), correctValue),
		container.NewBorder(nil, nil,
			widget.NewLabel(IconWrong+" "+sd.localization.GetText(KeyWrongAnswers)), wrongValue),
		widget.NewSeparator(),
		container.NewBorder(nil, nil,
			widget.NewLabel(sd.localization.GetText(KeyAccuracy)), accuracyValue),
	)

	d := dialog.NewCustom(
		sd.localization.GetText(KeySummaryTitle),
		sd.localization.GetText(KeyContinue),
		rows,
		sd.window,
	)

	d.SetOnClosed(sd.onContinue)
	d.Show()
}
