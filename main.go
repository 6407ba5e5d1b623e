package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/primetap/prime-tap/internal/config"
	"github.com/primetap/prime-tap/internal/quiz"
	"github.com/primetap/prime-tap/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.primetap.prime-tap"
	AppName = "Prime Tap"

	WindowWidth  = 360
	WindowHeight = 560
)

func main() {
	// Log version information
	fmt.Printf("Prime Tap v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply game theme
	myApp.Settings().SetTheme(ui.NewGameTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize the engine from saved settings
	settings := config.NewSettings(myApp)
	engine := quiz.NewService(quiz.Options{
		CountdownSeconds: settings.GetCountdownSeconds(),
		SummaryInterval:  settings.GetSummaryInterval(),
	}, quiz.NewScheduler())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, engine)

	// Begin the first round
	engine.Start()

	// Show and run
	myWindow.ShowAndRun()
}
