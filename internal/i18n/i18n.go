package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	LangEN = "en"
	LangAR = "ar"
)

//go:embed locales/*.json
var localeFS embed.FS

type bundle map[string]string

// Translator resolves display strings from the embedded locale
// bundles. Lookups never fail: a missing key (or unknown locale)
// yields the key itself so broken copy stays visible instead of
// crashing a view.
type Translator struct {
	bundles map[string]bundle
}

func NewTranslator() (*Translator, error) {
	t := &Translator{
		bundles: make(map[string]bundle),
	}

	for _, lang := range []string{LangEN, LangAR} {
		raw, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.json", lang))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s locale bundle: %v", lang, err)
		}

		var b bundle
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("failed to parse %s locale bundle: %v", lang, err)
		}

		t.bundles[lang] = b
	}

	return t, nil
}

// Translate resolves key in the given language and substitutes
// {placeholder} tokens by exact name. No pluralization, no fallback
// chain: an unknown key comes back unchanged.
func (t *Translator) Translate(lang, key string, vars map[string]string) string {
	value, ok := t.bundles[lang][key]
	if !ok {
		value = key
	}

	for name, replacement := range vars {
		value = strings.ReplaceAll(value, "{"+name+"}", replacement)
	}

	return value
}

// Keys returns every key in the given language bundle.
func (t *Translator) Keys(lang string) []string {
	keys := make([]string, 0, len(t.bundles[lang]))
	for k := range t.bundles[lang] {
		keys = append(keys, k)
	}
	return keys
}

func IsRTL(lang string) bool {
	return lang == LangAR
}

// Dir is the document text direction for the language, surfaced to
// clients so a locale switch flips rendering immediately.
func Dir(lang string) string {
	if IsRTL(lang) {
		return "rtl"
	}
	return "ltr"
}

func IsSupported(lang string) bool {
	return lang == LangEN || lang == LangAR
}
