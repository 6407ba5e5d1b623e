package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/primetap/prime-tap/internal/quiz"
	"github.com/primetap/prime-tap/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.primetap.prime-tap")
	myWindow := myApp.NewWindow("Prime Tap")
	myWindow.Resize(fyne.NewSize(360, 560))

	// Create engine and setup UI
	engine := quiz.NewService(quiz.Options{}, quiz.NewScheduler())
	ui.NewRootUI(myWindow, myApp, engine)
	engine.Start()

	// Show and run
	myWindow.ShowAndRun()
}
