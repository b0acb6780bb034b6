package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyPullToRefresh     = "pull_to_refresh"
	KeyRefreshing        = "refreshing"
	KeyRefresh           = "refresh"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyTouchSlop         = "touch_slop"
	KeyMaxPullDistance   = "max_pull_distance"
	KeyScrollTopSlack    = "scroll_top_slack"
	KeyScrollStartSlack  = "scroll_start_slack"
	KeyOverlayResetDelay = "overlay_reset_delay"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyRefreshed         = "refreshed"
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

	// Fallback to English
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

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Pull to Refresh",
		KeyPullToRefresh:     "Pull down to refresh",
		KeyRefreshing:        "Refreshing...",
		KeyRefresh:           "Refresh",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyTouchSlop:         "Touch Slop (dp)",
		KeyMaxPullDistance:   "Max Pull Distance (dp)",
		KeyScrollTopSlack:    "Top Slack (dp)",
		KeyScrollStartSlack:  "Start Slack (dp)",
		KeyOverlayResetDelay: "Overlay Reset Delay (ms)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRefreshed:         "Refreshed",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Потяните для обновления",
		KeyPullToRefresh:     "Потяните вниз, чтобы обновить",
		KeyRefreshing:        "Обновление...",
		KeyRefresh:           "Обновить",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyTouchSlop:         "Порог касания (dp)",
		KeyMaxPullDistance:   "Макс. длина жеста (dp)",
		KeyScrollTopSlack:    "Допуск вершины (dp)",
		KeyScrollStartSlack:  "Допуск начала (dp)",
		KeyOverlayResetDelay: "Задержка сброса (мс)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyRefreshed:         "Обновлено",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Puxar para Atualizar",
		KeyPullToRefresh:     "Puxe para baixo para atualizar",
		KeyRefreshing:        "Atualizando...",
		KeyRefresh:           "Atualizar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyTouchSlop:         "Limiar de Toque (dp)",
		KeyMaxPullDistance:   "Distância Máxima (dp)",
		KeyScrollTopSlack:    "Folga do Topo (dp)",
		KeyScrollStartSlack:  "Folga de Início (dp)",
		KeyOverlayResetDelay: "Atraso de Reinício (ms)",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRefreshed:         "Atualizado",
	}
}
