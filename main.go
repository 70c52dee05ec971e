package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/desirely/creator-desk/internal/api"
	"github.com/desirely/creator-desk/internal/config"
	"github.com/desirely/creator-desk/internal/log"
	"github.com/desirely/creator-desk/internal/notify"
	"github.com/desirely/creator-desk/internal/store"
	"github.com/desirely/creator-desk/internal/ui"
	"github.com/desirely/creator-desk/internal/upload"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.desirely.creator-desk"
	AppName = "Creator Desk"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	logger := log.New("development")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewDeskTheme(settings.GetThemeVariant()))

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	// Initialize services
	client := api.NewClient(settings.GetAPIBaseURL(), logger)
	queue := notify.New(logger)
	storeSvc := store.NewService(client, queue, logger)
	pipeline := upload.NewPipeline(client, storeSvc, queue, logger)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, storeSvc, queue, pipeline, client, logger)
	rootUI.Start()

	myApp.Lifecycle().SetOnStopped(func() {
		queue.Close()
	})

	// Show and run
	myWindow.ShowAndRun()
}
