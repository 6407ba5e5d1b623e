package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI provides mobile-specific UI enhancements
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// CreateAnswerButton creates a button sized for comfortable touch targets
func (m *MobileUI) CreateAnswerButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)
	btn.Importance = widget.HighImportance

	// For mobile devices, set minimum size for touch targets
	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(AnswerButtonWidth, AnswerButtonHeight))
	}

	return btn
}

// GetSpacing returns appropriate spacing for the current device
func (m *MobileUI) GetSpacing() float32 {
	if m.IsMobileDevice() {
		return 16 // Larger spacing for mobile
	}
	return 8 // Standard spacing for desktop
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// CreateAnswerRow arranges the two answer buttons: side by side on desktop
// and landscape, stacked in portrait on mobile
func (m *MobileUI) CreateAnswerRow(primeBtn, notPrimeBtn fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() && !m.IsLandscape() {
		return container.NewVBox(primeBtn, notPrimeBtn)
	}
	return container.NewGridWithColumns(2, primeBtn, notPrimeBtn)
}
