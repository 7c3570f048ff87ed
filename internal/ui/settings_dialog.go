package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/booru-gallery/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	baseURLEntry   *widget.Entry
	usernameEntry  *widget.Entry
	apiKeyEntry    *widget.Entry
	cacheDirEntry  *widget.Entry
	pageSizeSelect *widget.Select
	languageSelect *widget.Select

	languageCodes map[string]string // display label -> code
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values were written to preferences.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder("https://safebooru.donmai.us")

	sd.usernameEntry = widget.NewEntry()
	sd.apiKeyEntry = widget.NewPasswordEntry()

	sd.cacheDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(t(KeyBrowse), sd.onBrowseDirectory)
	cacheDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.cacheDirEntry)

	sd.pageSizeSelect = widget.NewSelect(pageSizeLabels(), nil)

	sd.languageCodes = make(map[string]string)
	var languageOptions []string
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(KeyConnectionSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyBaseURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(t(KeyUsername)+":"),
		sd.usernameEntry,

		widget.NewLabel(t(KeyAPIKey)+":"),
		sd.apiKeyEntry,

		widget.NewSeparator(),
		widget.NewLabel(t(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(t(KeyCacheDirectory)+":"),
		cacheDirRow,

		widget.NewLabel(t(KeyPageSize)+":"),
		sd.pageSizeSelect,

		widget.NewLabel(t(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(KeySettings),
		t(KeySave),
		t(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetBaseURL())
	sd.usernameEntry.SetText(sd.settings.GetUsername())
	sd.apiKeyEntry.SetText(sd.settings.GetAPIKey())
	sd.cacheDirEntry.SetText(sd.settings.GetCacheDirectory())
	sd.pageSizeSelect.SetSelected(strconv.Itoa(sd.settings.GetPageSize()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.cacheDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if baseURL := strings.TrimSpace(sd.baseURLEntry.Text); baseURL != "" {
		sd.settings.SetBaseURL(baseURL)
	}

	// Credentials may be cleared to search anonymously
	sd.settings.SetUsername(strings.TrimSpace(sd.usernameEntry.Text))
	sd.settings.SetAPIKey(strings.TrimSpace(sd.apiKeyEntry.Text))

	if dir := strings.TrimSpace(sd.cacheDirEntry.Text); dir != "" {
		sd.settings.SetCacheDirectory(dir)
	}

	if size, err := strconv.Atoi(sd.pageSizeSelect.Selected); err == nil {
		sd.settings.SetPageSize(size)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// pageSizeLabels returns the page size options as select labels
func pageSizeLabels() []string {
	labels := make([]string, len(config.PageSizeOptions))
	for i, size := range config.PageSizeOptions {
		labels[i] = strconv.Itoa(size)
	}
	return labels
}
