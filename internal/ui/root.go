package ui

import (
	"context"
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/booru-gallery/internal/booru"
	"github.com/ytget/booru-gallery/internal/browse"
	"github.com/ytget/booru-gallery/internal/config"
	"github.com/ytget/booru-gallery/internal/download"
	"github.com/ytget/booru-gallery/internal/logging"
	"github.com/ytget/booru-gallery/internal/model"
	"github.com/ytget/booru-gallery/internal/platform"
	"github.com/ytget/booru-gallery/internal/thumbnail"
)

// SessionFactory builds the searcher and fetcher for a client configuration.
// It is called again after the connection settings changed.
type SessionFactory func(cfg booru.Config) (booru.Searcher, download.Fetcher)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	session      *browse.Session
	factory      SessionFactory
	settings     *config.Settings
	localization *Localization

	// Top bar
	tagEntry       *widget.Entry
	searchBtn      *widget.Button
	pageSizeLabel  *widget.Label
	pageSizeSelect *widget.Select

	// Bottom bar
	prevBtn       *widget.Button
	nextBtn       *widget.Button
	pageLabel     *widget.Label
	statusLabel   *widget.Label
	selectedLabel *widget.Label
	saveBtn       *widget.Button
	backBtn       *widget.Button
	openBtn       *widget.Button
	folderBtn     *widget.Button
	spinner       *widget.ProgressBarInfinite

	galleryView *GalleryView
	zoomView    *ZoomView
	viewMode    model.ViewMode

	busy int // actions started and not finished yet
	log  *log.Entry
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, session *browse.Session, factory SessionFactory, settings *config.Settings, thumbs thumbnail.Thumbnailer) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		session:      session,
		factory:      factory,
		settings:     settings,
		localization: localization,
		viewMode:     model.ViewGrid,
		log:          logging.For("ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.galleryView = NewGalleryView(session.Gallery(), thumbs)
	ui.galleryView.SetCallbacks(ui.onSelectionChanged, ui.onZoom)
	ui.zoomView = NewZoomView(localization)

	// Session callbacks arrive on the worker goroutine
	session.SetBatchCallback(func(added []string) {
		fyne.Do(ui.galleryView.Refresh)
	})
	session.SetResetCallback(func() {
		fyne.Do(ui.galleryView.Reset)
	})

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	t := ui.localization.GetText

	ui.createMenu()

	ui.tagEntry = widget.NewEntry()
	ui.tagEntry.SetPlaceHolder(t(KeyEnterTag))
	ui.tagEntry.OnSubmitted = func(string) {
		ui.onSearch()
	}
	ui.searchBtn = widget.NewButton(t(KeySearch), ui.onSearch)
	ui.searchBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Selected before OnChanged is set so startup does not trigger a search
	ui.pageSizeLabel = widget.NewLabel(t(KeyPageSize))
	ui.pageSizeSelect = widget.NewSelect(pageSizeLabels(), nil)
	ui.pageSizeSelect.SetSelected(strconv.Itoa(ui.settings.GetPageSize()))
	ui.pageSizeSelect.OnChanged = ui.onPageSizeChanged

	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}
	right := container.NewHBox(ui.searchBtn, ui.pageSizeLabel, ui.pageSizeSelect)
	topPanel := container.NewBorder(nil, nil, left, right, ui.tagEntry)

	ui.prevBtn = widget.NewButton(IconPrev+" "+t(KeyPrevious), ui.onPrevPage)
	ui.nextBtn = widget.NewButton(t(KeyNext)+" "+IconNext, ui.onNextPage)
	ui.pageLabel = widget.NewLabel("")
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.selectedLabel = widget.NewLabel("")
	ui.selectedLabel.Hide()
	ui.saveBtn = widget.NewButton(IconSave+" "+t(KeySaveSelected), ui.onSaveSelected)
	ui.backBtn = widget.NewButton(IconBack+" "+t(KeyBack), ui.onBack)
	ui.openBtn = widget.NewButton(t(KeyOpen), ui.onOpenZoomed)
	ui.folderBtn = widget.NewButton(IconFolder+" "+t(KeyShowInFolder), ui.onRevealZoomed)
	ui.spinner = widget.NewProgressBarInfinite()
	ui.spinner.Stop()
	ui.spinner.Hide()

	paging := container.NewHBox(ui.prevBtn, ui.pageLabel, ui.nextBtn)
	actions := container.NewHBox(ui.selectedLabel, ui.saveBtn, ui.backBtn, ui.openBtn, ui.folderBtn)
	bottomPanel := container.NewVBox(
		ui.spinner,
		container.NewBorder(nil, nil, paging, actions, ui.statusLabel),
	)

	center := container.NewStack(ui.galleryView.Widget(), ui.zoomView.Container())

	content := container.NewBorder(
		topPanel,    // top
		bottomPanel, // bottom
		nil,         // left
		nil,         // right
		center,
	)

	ui.window.SetContent(content)
	ui.applyViewMode()
	ui.updatePaging()

	ui.log.Debug("UI setup completed")
}

// Restore shows images left in the cache from the previous run
func (ui *RootUI) Restore() {
	go func() {
		n, err := ui.session.Restore()
		if err != nil {
			ui.log.WithError(err).Warn("Restoring cached images")
			return
		}
		ui.log.Infof("Restored %d cached images", n)
	}()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.window.SetTitle(t(KeyAppTitle))
	ui.tagEntry.SetPlaceHolder(t(KeyEnterTag))
	ui.searchBtn.SetText(t(KeySearch))
	ui.pageSizeLabel.SetText(t(KeyPageSize))
	ui.prevBtn.SetText(IconPrev + " " + t(KeyPrevious))
	ui.nextBtn.SetText(t(KeyNext) + " " + IconNext)
	ui.saveBtn.SetText(IconSave + " " + t(KeySaveSelected))
	ui.backBtn.SetText(IconBack + " " + t(KeyBack))
	ui.openBtn.SetText(t(KeyOpen))
	ui.folderBtn.SetText(IconFolder + " " + t(KeyShowInFolder))
	ui.updatePaging()
	ui.onSelectionChanged(ui.galleryView.Selection().Count(), ui.galleryView.Selection().Mode())
}

// onSearch starts a new search for the entered tag
func (ui *RootUI) onSearch() {
	tag := ui.tagEntry.Text
	ui.runAction(func(ctx context.Context) (download.Report, error) {
		return ui.session.Search(ctx, tag)
	})
}

func (ui *RootUI) onNextPage() {
	ui.runAction(ui.session.NextPage)
}

func (ui *RootUI) onPrevPage() {
	ui.runAction(ui.session.PrevPage)
}

// onPageSizeChanged stores the new size and reloads the first page
func (ui *RootUI) onPageSizeChanged(selected string) {
	size, err := strconv.Atoi(selected)
	if err != nil {
		return
	}
	ui.settings.SetPageSize(size)
	ui.runAction(func(ctx context.Context) (download.Report, error) {
		return ui.session.SetPageSize(ctx, size)
	})
}

// runAction runs a session action off the Fyne thread. The session
// serializes actions, so a second click waits for the first.
func (ui *RootUI) runAction(action func(ctx context.Context) (download.Report, error)) {
	if ui.viewMode == model.ViewZoomed {
		ui.onBack()
	}
	ui.setBusy(true)

	go func() {
		report, err := action(context.Background())
		fyne.Do(func() {
			ui.setBusy(false)
			ui.updatePaging()
			ui.handleActionResult(report, err)
		})
	}()
}

func (ui *RootUI) handleActionResult(report download.Report, err error) {
	t := ui.localization.GetText

	var queryErr *booru.QueryError
	switch {
	case err == nil && report.Attempted > 0:
		ui.statusLabel.SetText(fmt.Sprintf(t(KeyLoadedFormat), report.Downloaded, report.Cached, report.Failed))
	case err == nil && ui.session.Current().Tag == "":
		ui.statusLabel.SetText("")
	case err == nil:
		ui.statusLabel.SetText(t(KeyNoResults))
	case errors.Is(err, browse.ErrEmptyTag):
		ui.statusLabel.SetText("")
		dialog.ShowInformation(t(KeyAppTitle), t(KeyPleaseEnterTag), ui.window)
	case errors.As(err, &queryErr):
		ui.statusLabel.SetText(t(KeySearchFailed))
		dialog.ShowError(queryErr, ui.window)
	default:
		ui.statusLabel.SetText(t(KeySearchFailed))
		dialog.ShowError(err, ui.window)
	}
}

// setBusy counts running actions; the spinner stays until the last one ends
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.busy++
	} else if ui.busy > 0 {
		ui.busy--
	}

	if ui.busy > 0 {
		ui.statusLabel.SetText(ui.localization.GetText(KeyLoading))
		ui.spinner.Show()
		ui.spinner.Start()
	} else {
		ui.spinner.Stop()
		ui.spinner.Hide()
	}
	ui.updatePaging()
}

// updatePaging reflects the current page in the label and buttons
func (ui *RootUI) updatePaging() {
	current := ui.session.Current()
	ui.pageLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeyPageFormat), current.Page))

	if ui.busy > 0 || current.Tag == "" {
		ui.prevBtn.Disable()
		ui.nextBtn.Disable()
		return
	}
	ui.nextBtn.Enable()
	if current.Page > 1 {
		ui.prevBtn.Enable()
	} else {
		ui.prevBtn.Disable()
	}
}

// onSelectionChanged shows the selected count only when something is selected
func (ui *RootUI) onSelectionChanged(count int, mode model.SelectionMode) {
	if count > 0 {
		ui.selectedLabel.SetText(fmt.Sprintf(ui.localization.GetText(KeySelectedFormat), count))
		ui.selectedLabel.Show()
	} else {
		ui.selectedLabel.Hide()
	}
	ui.log.Tracef("Selection mode %s", mode)
}

// onZoom opens the detail view. The zoomed image becomes the only selected
// one, so it can be saved from the detail view.
func (ui *RootUI) onZoom(path string) {
	ui.galleryView.SelectOnly(path)
	ui.zoomView.Show(path)
	ui.viewMode = model.ViewZoomed
	ui.applyViewMode()
}

// onBack returns from the detail view to the grid
func (ui *RootUI) onBack() {
	ui.zoomView.Hide()
	ui.viewMode = model.ViewGrid
	ui.applyViewMode()
}

func (ui *RootUI) applyViewMode() {
	if ui.viewMode == model.ViewZoomed {
		ui.galleryView.Widget().Hide()
		ui.backBtn.Show()
		ui.openBtn.Show()
		ui.folderBtn.Show()
		return
	}
	ui.galleryView.Widget().Show()
	ui.backBtn.Hide()
	ui.openBtn.Hide()
	ui.folderBtn.Hide()
}

func (ui *RootUI) onOpenZoomed() {
	path := ui.zoomView.Path()
	if path == "" {
		return
	}
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		ui.log.WithError(err).Warnf("Opening %s", path)
		dialog.ShowError(errors.Wrap(err, ui.localization.GetText(KeyErrorOpeningFile)), ui.window)
	}
}

func (ui *RootUI) onRevealZoomed() {
	path := ui.zoomView.Path()
	if path == "" {
		return
	}
	if err := platform.OpenFileInManager(path); err != nil {
		ui.log.WithError(err).Warnf("Revealing %s", path)
		dialog.ShowError(errors.Wrap(err, ui.localization.GetText(KeyErrorOpeningFile)), ui.window)
	}
}

// onSaveSelected asks for a folder and copies the selected images into it
func (ui *RootUI) onSaveSelected() {
	t := ui.localization.GetText

	paths := ui.galleryView.Selection().Paths()
	if len(paths) == 0 {
		dialog.ShowInformation(t(KeySaveSelected), t(KeyNothingSelected), ui.window)
		return
	}

	folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			ui.statusLabel.SetText(t(KeySaveCancelled))
			return
		}

		result, err := platform.ExportFiles(paths, uri.Path())
		if err != nil {
			ui.log.WithError(err).Errorf("Export to %s failed", uri.Path())
			dialog.ShowError(err, ui.window)
			return
		}
		ui.log.Infof("Exported %d images to %s (%d skipped)", len(result.Copied), uri.Path(), len(result.Skipped))

		message := fmt.Sprintf(t(KeySavedFormat), len(result.Copied), uri.Path())
		ui.statusLabel.SetText(message)
		dialog.ShowInformation(t(KeySaveSelected), message, ui.window)
	}, ui.window)

	if pictures, err := platform.GetHomePicturesDir(); err == nil {
		if lister, err := storage.ListerForURI(storage.NewFileURI(pictures)); err == nil {
			folderDialog.SetLocation(lister)
		}
	}
	folderDialog.Show()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies saved settings to the running session
func (ui *RootUI) onSettingsSaved() {
	t := ui.localization.GetText

	cacheDir := ui.settings.GetCacheDirectory()
	if err := platform.CreateDirectoryIfNotExists(cacheDir); err != nil {
		ui.log.WithError(err).Warnf("Cannot create cache directory %s", cacheDir)
	}

	language := ui.settings.GetLanguage()
	size := ui.settings.GetPageSize()

	go func() {
		searcher, fetcher := ui.factory(ui.settings.ClientConfig())
		ui.session.Reconfigure(searcher, fetcher)
		ui.session.SetCacheDir(cacheDir)
		fyne.Do(func() {
			if language != ui.localization.GetCurrentLanguage() {
				ui.onLanguageChange(language)
			}
			ui.pageSizeSelect.SetSelected(strconv.Itoa(size))
			dialog.ShowInformation(t(KeySettings), t(KeySettingsSaved)+"\n"+t(KeyRestartForClient), ui.window)
		})
	}()
}
