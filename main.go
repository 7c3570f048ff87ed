package main

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/booru-gallery/internal/booru"
	"github.com/ytget/booru-gallery/internal/browse"
	"github.com/ytget/booru-gallery/internal/config"
	"github.com/ytget/booru-gallery/internal/download"
	"github.com/ytget/booru-gallery/internal/logging"
	"github.com/ytget/booru-gallery/internal/platform"
	"github.com/ytget/booru-gallery/internal/thumbnail"
	"github.com/ytget/booru-gallery/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.booru-gallery"
	AppName = "Booru Gallery"
	EnvFile = ".env"
	LogFile = "booru-gallery.log"

	WindowWidth  = 1024
	WindowHeight = 720
)

func main() {
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	logging.Setup(settings.GetLogLevel(), filepath.Join(myApp.Storage().RootURI().Path(), LogFile))
	logger := logging.For("main")
	logger.Infof("%s v%s starting", AppName, version)

	env, err := config.LoadEnv(EnvFile)
	if err != nil {
		logger.WithError(err).Warn("Ignoring .env")
	}
	settings.Seed(env)

	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	cacheDir := settings.GetCacheDirectory()
	if err := platform.CreateDirectoryIfNotExists(cacheDir); err != nil {
		logger.WithError(err).Errorf("Failed to ensure cache dir %s", cacheDir)
	}

	factory := func(cfg booru.Config) (booru.Searcher, download.Fetcher) {
		return booru.NewClient(cfg), download.NewPipeline(cfg)
	}
	searcher, fetcher := factory(settings.ClientConfig())
	session := browse.NewSession(searcher, fetcher, browse.DefaultOptions(cacheDir, settings.GetPageSize()))

	root := ui.NewRootUI(myWindow, session, factory, settings, thumbnail.NewService(ui.ThumbnailPixels))
	root.Restore()

	myWindow.ShowAndRun()
	log.Info("Exiting")
}
