package ui

import "github.com/ytget/gifrunner/internal/overlay"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyChooseGIF         = "choose_gif"
	KeyOpenGIF           = "open_gif"
	KeyCloseAll          = "close_all"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyLock              = "lock"
	KeyUnlock            = "unlock"
	KeyClose             = "close"
	KeyLockedSuffix      = "locked_suffix"
	KeyPickerHint        = "picker_hint"
	KeyOpenFailed        = "open_failed"
	KeyOpenWindows       = "open_windows"
	KeyOverlaySettings   = "overlay_settings"
	KeyInterfaceSettings = "interface_settings"
	KeyMinFrameInterval  = "min_frame_interval"
	KeyScalePercent      = "scale_percent"
	KeyRepromptOnError   = "reprompt_on_error"
	KeyQuitWhenIdle      = "quit_when_idle"
	KeyStartLocked       = "start_locked"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
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

// OverlayLabels returns the context menu and title texts for new overlay windows
func (l *Localization) OverlayLabels() overlay.Labels {
	return overlay.Labels{
		Lock:         l.GetText(KeyLock),
		Unlock:       l.GetText(KeyUnlock),
		Close:        l.GetText(KeyClose),
		LockedSuffix: l.GetText(KeyLockedSuffix),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "GIF Runner",
		KeyChooseGIF:         "Choose a GIF",
		KeyOpenGIF:           "Open GIF...",
		KeyCloseAll:          "Close All Overlays",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyLock:              "Lock",
		KeyUnlock:            "Unlock",
		KeyClose:             "Close",
		KeyLockedSuffix:      " (locked)",
		KeyPickerHint:        "Pick a GIF to open it as an overlay. Cancel the dialog to stop picking.",
		KeyOpenFailed:        "Could not open",
		KeyOpenWindows:       "Open overlays",
		KeyOverlaySettings:   "Overlay Settings",
		KeyInterfaceSettings: "Interface Settings",
		KeyMinFrameInterval:  "Minimum Frame Interval (ms)",
		KeyScalePercent:      "Scale (%)",
		KeyRepromptOnError:   "Ask again after a file fails to open",
		KeyQuitWhenIdle:      "Quit when no overlay is open",
		KeyStartLocked:       "Open new overlays locked",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "GIF Runner",
		KeyChooseGIF:         "Выберите GIF",
		KeyOpenGIF:           "Открыть GIF...",
		KeyCloseAll:          "Закрыть все окна",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyLock:              "Закрепить",
		KeyUnlock:            "Открепить",
		KeyClose:             "Закрыть",
		KeyLockedSuffix:      " (закреплено)",
		KeyPickerHint:        "Выберите GIF, чтобы открыть его поверх окон. Отмените диалог, чтобы закончить.",
		KeyOpenFailed:        "Не удалось открыть",
		KeyOpenWindows:       "Открытые окна",
		KeyOverlaySettings:   "Настройки окон",
		KeyInterfaceSettings: "Настройки интерфейса",
		KeyMinFrameInterval:  "Мин. интервал кадра (мс)",
		KeyScalePercent:      "Масштаб (%)",
		KeyRepromptOnError:   "Спрашивать снова после ошибки",
		KeyQuitWhenIdle:      "Выходить, когда нет открытых окон",
		KeyStartLocked:       "Открывать окна закреплёнными",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "GIF Runner",
		KeyChooseGIF:         "Escolha um GIF",
		KeyOpenGIF:           "Abrir GIF...",
		KeyCloseAll:          "Fechar Todas as Janelas",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyLock:              "Travar",
		KeyUnlock:            "Destravar",
		KeyClose:             "Fechar",
		KeyLockedSuffix:      " (travado)",
		KeyPickerHint:        "Escolha um GIF para abri-lo como sobreposição. Cancele o diálogo para parar.",
		KeyOpenFailed:        "Não foi possível abrir",
		KeyOpenWindows:       "Janelas abertas",
		KeyOverlaySettings:   "Configurações das Janelas",
		KeyInterfaceSettings: "Configurações da Interface",
		KeyMinFrameInterval:  "Intervalo Mínimo de Quadro (ms)",
		KeyScalePercent:      "Escala (%)",
		KeyRepromptOnError:   "Perguntar novamente após falha",
		KeyQuitWhenIdle:      "Sair quando não houver janelas",
		KeyStartLocked:       "Abrir novas janelas travadas",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
