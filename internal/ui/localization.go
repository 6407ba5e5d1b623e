package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyPrime            = "prime"
	KeyNotPrime         = "not_prime"
	KeyCorrect          = "correct"
	KeyWrong            = "wrong"
	KeyTimeUp           = "time_up"
	KeyFactPrime        = "fact_prime"
	KeyFactNotPrime     = "fact_not_prime"
	KeyScore            = "score"
	KeyTimeLeft         = "time_left"
	KeySummaryTitle     = "summary_title"
	KeyContinue         = "continue"
	KeyCorrectAnswers   = "correct_answers"
	KeyWrongAnswers     = "wrong_answers"
	KeyTotalAttempts    = "total_attempts"
	KeyAccuracy         = "accuracy"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyCountdownSeconds = "countdown_seconds"
	KeySummaryInterval  = "summary_interval"
	KeyRevealOnTimeout  = "reveal_on_timeout"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
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
		KeyAppTitle:         "Prime Tap",
		KeyPrime:            "Prime",
		KeyNotPrime:         "Not Prime",
		KeyCorrect:          "Correct!",
		KeyWrong:            "Wrong",
		KeyTimeUp:           "Time's up",
		KeyFactPrime:        "%d is prime",
		KeyFactNotPrime:     "%d is not prime",
		KeyScore:            "Score",
		KeyTimeLeft:         "Time left",
		KeySummaryTitle:     "Results",
		KeyContinue:         "Continue",
		KeyCorrectAnswers:   "Correct",
		KeyWrongAnswers:     "Wrong",
		KeyTotalAttempts:    "Attempts",
		KeyAccuracy:         "Accuracy",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyCountdownSeconds: "Countdown (seconds)",
		KeySummaryInterval:  "Rounds per summary",
		KeyRevealOnTimeout:  "Reveal answer on timeout",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Prime Tap",
		KeyPrime:            "Простое",
		KeyNotPrime:         "Составное",
		KeyCorrect:          "Верно!",
		KeyWrong:            "Неверно",
		KeyTimeUp:           "Время вышло",
		KeyFactPrime:        "%d — простое число",
		KeyFactNotPrime:     "%d — не простое число",
		KeyScore:            "Счёт",
		KeyTimeLeft:         "Осталось",
		KeySummaryTitle:     "Итоги",
		KeyContinue:         "Продолжить",
		KeyCorrectAnswers:   "Верных",
		KeyWrongAnswers:     "Ошибок",
		KeyTotalAttempts:    "Попыток",
		KeyAccuracy:         "Точность",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyCountdownSeconds: "Отсчёт (секунды)",
		KeySummaryInterval:  "Раундов до итогов",
		KeyRevealOnTimeout:  "Показывать ответ при тайм-ауте",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Prime Tap",
		KeyPrime:            "Primo",
		KeyNotPrime:         "Não Primo",
		KeyCorrect:          "Correto!",
		KeyWrong:            "Errado",
		KeyTimeUp:           "Tempo esgotado",
		KeyFactPrime:        "%d é primo",
		KeyFactNotPrime:     "%d não é primo",
		KeyScore:            "Pontuação",
		KeyTimeLeft:         "Tempo restante",
		KeySummaryTitle:     "Resultados",
		KeyContinue:         "Continuar",
		KeyCorrectAnswers:   "Corretas",
		KeyWrongAnswers:     "Erradas",
		KeyTotalAttempts:    "Tentativas",
		KeyAccuracy:         "Precisão",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyCountdownSeconds: "Contagem (segundos)",
		KeySummaryInterval:  "Rodadas por resumo",
		KeyRevealOnTimeout:  "Revelar resposta no tempo esgotado",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
	}
}
