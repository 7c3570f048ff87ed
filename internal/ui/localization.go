package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyEnterTag           = "enter_tag"
	KeySearch             = "search"
	KeyPleaseEnterTag     = "please_enter_tag"
	KeyPrevious           = "previous"
	KeyNext               = "next"
	KeyPageFormat         = "page_format"
	KeyPageSize           = "page_size"
	KeySelectedFormat     = "selected_format"
	KeySaveSelected       = "save_selected"
	KeyNothingSelected    = "nothing_selected"
	KeySavedFormat        = "saved_format"
	KeySaveCancelled      = "save_cancelled"
	KeyBack               = "back"
	KeyOpen               = "open"
	KeyShowInFolder       = "show_in_folder"
	KeyErrorOpeningFile   = "error_opening_file"
	KeySearchFailed       = "search_failed"
	KeyLoading            = "loading"
	KeyLoadedFormat       = "loaded_format"
	KeyNoTags             = "no_tags"
	KeyNoResults          = "no_results"
	KeyBaseURL            = "base_url"
	KeyUsername           = "username"
	KeyAPIKey             = "api_key"
	KeyCacheDirectory     = "cache_directory"
	KeyBrowse             = "browse"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyRestartForClient   = "restart_for_client"
	KeyConnectionSettings = "connection_settings"
	KeyInterfaceSettings  = "interface_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Booru Gallery",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyEnterTag:           "Enter a tag and press Enter",
		KeySearch:             "Search",
		KeyPleaseEnterTag:     "Please enter a tag",
		KeyPrevious:           "Previous",
		KeyNext:               "Next",
		KeyPageFormat:         "Page %d",
		KeyPageSize:           "Images per page",
		KeySelectedFormat:     "Selected: %d",
		KeySaveSelected:       "Save selected",
		KeyNothingSelected:    "No images selected",
		KeySavedFormat:        "Saved %d images to %s",
		KeySaveCancelled:      "Save cancelled",
		KeyBack:               "Back",
		KeyOpen:               "Open",
		KeyShowInFolder:       "Show in folder",
		KeyErrorOpeningFile:   "Error opening file",
		KeySearchFailed:       "Search failed",
		KeyLoading:            "Loading...",
		KeyLoadedFormat:       "%d downloaded, %d from cache, %d failed",
		KeyNoTags:             "(no tags)",
		KeyNoResults:          "No images found for this tag",
		KeyBaseURL:            "Image board URL",
		KeyUsername:           "Username",
		KeyAPIKey:             "API key",
		KeyCacheDirectory:     "Cache directory",
		KeyBrowse:             "Browse",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyRestartForClient:   "Connection settings apply to the next search",
		KeyConnectionSettings: "Connection",
		KeyInterfaceSettings:  "Interface",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Галерея Booru",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyEnterTag:           "Введите тег и нажмите Enter",
		KeySearch:             "Поиск",
		KeyPleaseEnterTag:     "Пожалуйста, введите тег",
		KeyPrevious:           "Назад",
		KeyNext:               "Вперёд",
		KeyPageFormat:         "Страница %d",
		KeyPageSize:           "Изображений на странице",
		KeySelectedFormat:     "Выбрано: %d",
		KeySaveSelected:       "Сохранить выбранные",
		KeyNothingSelected:    "Изображения не выбраны",
		KeySavedFormat:        "Сохранено %d изображений в %s",
		KeySaveCancelled:      "Сохранение отменено",
		KeyBack:               "К сетке",
		KeyOpen:               "Открыть",
		KeyShowInFolder:       "Показать в папке",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeySearchFailed:       "Ошибка поиска",
		KeyLoading:            "Загрузка...",
		KeyLoadedFormat:       "%d загружено, %d из кэша, %d с ошибкой",
		KeyNoTags:             "(нет тегов)",
		KeyNoResults:          "По этому тегу ничего не найдено",
		KeyBaseURL:            "Адрес имиджборда",
		KeyUsername:           "Имя пользователя",
		KeyAPIKey:             "API ключ",
		KeyCacheDirectory:     "Папка кэша",
		KeyBrowse:             "Обзор",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyRestartForClient:   "Настройки подключения применятся к следующему поиску",
		KeyConnectionSettings: "Подключение",
		KeyInterfaceSettings:  "Интерфейс",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Galeria Booru",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyEnterTag:           "Digite uma tag e pressione Enter",
		KeySearch:             "Pesquisar",
		KeyPleaseEnterTag:     "Por favor, digite uma tag",
		KeyPrevious:           "Anterior",
		KeyNext:               "Próxima",
		KeyPageFormat:         "Página %d",
		KeyPageSize:           "Imagens por página",
		KeySelectedFormat:     "Selecionadas: %d",
		KeySaveSelected:       "Salvar selecionadas",
		KeyNothingSelected:    "Nenhuma imagem selecionada",
		KeySavedFormat:        "%d imagens salvas em %s",
		KeySaveCancelled:      "Salvamento cancelado",
		KeyBack:               "Voltar",
		KeyOpen:               "Abrir",
		KeyShowInFolder:       "Mostrar na pasta",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeySearchFailed:       "Falha na pesquisa",
		KeyLoading:            "Carregando...",
		KeyLoadedFormat:       "%d baixadas, %d do cache, %d com erro",
		KeyNoTags:             "(sem tags)",
		KeyNoResults:          "Nenhuma imagem encontrada para esta tag",
		KeyBaseURL:            "URL do image board",
		KeyUsername:           "Usuário",
		KeyAPIKey:             "Chave da API",
		KeyCacheDirectory:     "Diretório de cache",
		KeyBrowse:             "Navegar",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyRestartForClient:   "As configurações de conexão valem para a próxima pesquisa",
		KeyConnectionSettings: "Conexão",
		KeyInterfaceSettings:  "Interface",
	}
}
