package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/pulltorefresh/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.pulltorefresh"
	AppName = "Pull to Refresh"

	WindowWidth  = 420
	WindowHeight = 720
)

func main() {
	fmt.Printf("Pull to Refresh demo v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPullTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	ui.NewRootUI(myWindow, myApp)

	myWindow.ShowAndRun()
}
