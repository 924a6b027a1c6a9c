package i18n

// Locale is the persisted language selection together with its derived
// rendering hints.
type Locale struct {
	Language string `json:"language"`
	Dir      string `json:"dir"`
	RTL      bool   `json:"rtl"`
}

func NewLocale(lang string) *Locale {
	return &Locale{
		Language: lang,
		Dir:      Dir(lang),
		RTL:      IsRTL(lang),
	}
}
