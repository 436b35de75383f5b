// Package i18n translates the handful of UI labels the timer shows.
package i18n

import (
	"os"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/jeandeaual/go-locale"
)

// EnvLanguage overrides locale detection when set.
const EnvLanguage = "WORKPLAY_LANG"

var (
	mu   sync.RWMutex
	lang = "en"
)

var supported = []string{"pt", "es", "ru"}

var translations = map[string]map[string]string{
	"Work": {
		"pt": "Trabalho",
		"es": "Trabajo",
		"ru": "Работа",
	},
	"Play": {
		"pt": "Descanso",
		"es": "Descanso",
		"ru": "Отдых",
	},
	"Idle": {
		"pt": "Parado",
		"es": "Inactivo",
		"ru": "Ожидание",
	},
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Stop": {
		"pt": "Parar",
		"es": "Parar",
		"ru": "Стоп",
	},
	"Work minutes": {
		"pt": "Minutos de trabalho",
		"es": "Minutos de trabajo",
		"ru": "Минуты работы",
	},
	"Play minutes": {
		"pt": "Minutos de descanso",
		"es": "Minutos de descanso",
		"ru": "Минуты отдыха",
	},
	"Show timer": {
		"pt": "Mostrar temporizador",
		"es": "Mostrar temporizador",
		"ru": "Показать таймер",
	},
	"Quit": {
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
	},
	"Status": {
		"pt": "Estado",
		"es": "Estado",
		"ru": "Статус",
	},
}

// Init picks the UI language: forced wins, then WORKPLAY_LANG, then the
// first system locale. Anything unsupported falls back to English.
func Init(forced string, logger hclog.Logger) string {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	candidate := strings.TrimSpace(forced)
	if candidate == "" {
		candidate = strings.TrimSpace(os.Getenv(EnvLanguage))
	}
	if candidate == "" {
		userLocales, err := locale.GetLocales()
		if err != nil {
			logger.Debug("could not get user locale, defaulting to english", "error", err)
		} else if len(userLocales) > 0 {
			candidate = userLocales[0]
			logger.Debug("detected user locale", "locale", candidate)
		}
	}

	SetLanguage(normalize(candidate))
	selected := Language()
	logger.Info("language set", "lang", selected)
	return selected
}

// SetLanguage forces a language code such as "ru".
func SetLanguage(code string) {
	mu.Lock()
	defer mu.Unlock()
	lang = normalize(code)
}

// Language returns the active language code.
func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// T translates key, returning key itself for English or unknown entries.
func T(key string) string {
	mu.RLock()
	current := lang
	mu.RUnlock()
	if translated, ok := translations[key][current]; ok {
		return translated
	}
	return key
}

func normalize(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, prefix := range supported {
		if strings.HasPrefix(code, prefix) {
			return prefix
		}
	}
	return "en"
}
