package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	en := l.texts["en"]
	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if assert.True(t, ok, "missing texts for %s", code) {
			for key := range en {
				assert.NotEmpty(t, texts[key], "%s: missing %s", code, key)
			}
		}
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("pt")
	assert.Equal(t, "pt", l.GetCurrentLanguage())
	assert.Equal(t, "Atualizando...", l.GetText(KeyRefreshing))

	// unknown languages are ignored
	l.SetLanguage("xx")
	assert.Equal(t, "pt", l.GetCurrentLanguage())

	l.SetLanguage("system")
	assert.Equal(t, "en", l.GetCurrentLanguage())
}

func TestLocalization_Fallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")
	delete(l.texts["ru"], KeyRefreshed)

	assert.Equal(t, "Refreshed", l.GetText(KeyRefreshed))
	assert.Equal(t, "no_such_key", l.GetText("no_such_key"))
}
