package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyTabInfo        = "tab_info"
	KeyTabList        = "tab_list"
	KeyTabGrid        = "tab_grid"
	KeyItem           = "item"
	KeyAbout          = "about"
	KeyFiller         = "filler"
	KeySettings       = "settings"
	KeyFile           = "file"
	KeyLanguage       = "language"
	KeyScaleDivisor   = "scale_divisor"
	KeySettleDelay    = "settle_delay"
	KeySettleQuiet    = "settle_quiet"
	KeySnapEnabled    = "snap_enabled"
	KeyDebugOverlay   = "debug_overlay"
	KeyHeaderSettings = "header_settings"
	KeyInterface      = "interface"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeySettingsSaved  = "settings_saved"
	KeyRestartNeeded  = "restart_needed"
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

	// Final fallback - return key itself
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
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Profile",
		KeyTabInfo:        "Info",
		KeyTabList:        "List",
		KeyTabGrid:        "Grid",
		KeyItem:           "Item",
		KeyAbout:          "About",
		KeyFiller:         "More about this profile",
		KeySettings:       "Settings",
		KeyFile:           "File",
		KeyLanguage:       "Language",
		KeyScaleDivisor:   "Username Scale Divisor",
		KeySettleDelay:    "Scrollbar Settle Delay (ms)",
		KeySettleQuiet:    "Scroll Settle Quiet Period (ms)",
		KeySnapEnabled:    "Snap header to expanded or compact",
		KeyDebugOverlay:   "Show scroll debug overlay",
		KeyHeaderSettings: "Header Settings",
		KeyInterface:      "Interface Settings",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeySettingsSaved:  "Settings saved successfully!",
		KeyRestartNeeded:  "Language changes apply after restart.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Профиль",
		KeyTabInfo:        "Инфо",
		KeyTabList:        "Список",
		KeyTabGrid:        "Сетка",
		KeyItem:           "Элемент",
		KeyAbout:          "О себе",
		KeyFiller:         "Подробнее о профиле",
		KeySettings:       "Настройки",
		KeyFile:           "Файл",
		KeyLanguage:       "Язык",
		KeyScaleDivisor:   "Делитель масштаба имени",
		KeySettleDelay:    "Задержка полосы прокрутки (мс)",
		KeySettleQuiet:    "Пауза завершения прокрутки (мс)",
		KeySnapEnabled:    "Доводить шапку до полного или компактного вида",
		KeyDebugOverlay:   "Показывать отладку прокрутки",
		KeyHeaderSettings: "Настройки шапки",
		KeyInterface:      "Настройки интерфейса",
		KeySave:           "Сохранить",
		KeyCancel:         "Отмена",
		KeySettingsSaved:  "Настройки успешно сохранены!",
		KeyRestartNeeded:  "Язык изменится после перезапуска.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:       "Perfil",
		KeyTabInfo:        "Info",
		KeyTabList:        "Lista",
		KeyTabGrid:        "Grade",
		KeyItem:           "Item",
		KeyAbout:          "Sobre",
		KeyFiller:         "Mais sobre este perfil",
		KeySettings:       "Configurações",
		KeyFile:           "Arquivo",
		KeyLanguage:       "Idioma",
		KeyScaleDivisor:   "Divisor de Escala do Nome",
		KeySettleDelay:    "Atraso da Barra de Rolagem (ms)",
		KeySettleQuiet:    "Pausa de Fim de Rolagem (ms)",
		KeySnapEnabled:    "Ajustar cabeçalho a expandido ou compacto",
		KeyDebugOverlay:   "Mostrar depuração de rolagem",
		KeyHeaderSettings: "Configurações do Cabeçalho",
		KeyInterface:      "Configurações da Interface",
		KeySave:           "Salvar",
		KeyCancel:         "Cancelar",
		KeySettingsSaved:  "Configurações salvas com sucesso!",
		KeyRestartNeeded:  "O idioma muda após reiniciar.",
	}
}
