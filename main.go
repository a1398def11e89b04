package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/profile-header/internal/config"
	"github.com/ytget/profile-header/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.profile-header"
	AppName = "Profile Header"
)

func main() {
	// Log version information
	fmt.Printf("Profile Header v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize settings and page content
	settings := config.NewSettings(myApp)
	profile, err := config.LoadProfile()
	if err != nil {
		log.Printf("failed to load profile, using defaults: %v", err)
		profile = config.DefaultProfile()
	}

	// Create and setup UI
	ui.NewProfilePage(myWindow, myApp, settings, profile)

	// Show and run
	myWindow.ShowAndRun()
}
