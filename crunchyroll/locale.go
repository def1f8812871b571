package crunchyroll

// Locale is a language tag as the api uses it, e.g. "en-US". Values the
// package does not know about are kept verbatim.
type Locale string

// Known locales
const (
	LocaleEnUS  Locale = "en-US"
	LocaleEnIN  Locale = "en-IN"
	LocaleIDID  Locale = "id-ID"
	LocaleMsMY  Locale = "ms-MY"
	LocaleThTH  Locale = "th-TH"
	LocaleViVN  Locale = "vi-VN"
	LocaleArME  Locale = "ar-ME"
	LocaleArSA  Locale = "ar-SA"
	LocaleDeDE  Locale = "de-DE"
	LocaleEs419 Locale = "es-419"
	LocaleEsES  Locale = "es-ES"
	LocaleEsLA  Locale = "es-LA"
	LocaleFrFR  Locale = "fr-FR"
	LocaleHiIN  Locale = "hi-IN"
	LocaleItIT  Locale = "it-IT"
	LocalePtBR  Locale = "pt-BR"
	LocalePtPT  Locale = "pt-PT"
	LocaleRuRU  Locale = "ru-RU"
	LocaleJaJP  Locale = "ja-JP"
	LocaleZhCN  Locale = "zh-CN"
	LocaleZhTW  Locale = "zh-TW"
	LocaleKoKR  Locale = "ko-KR"
)

var knownLocales = map[Locale]bool{
	LocaleEnUS: true, LocaleEnIN: true, LocaleIDID: true, LocaleMsMY: true,
	LocaleThTH: true, LocaleViVN: true, LocaleArME: true, LocaleArSA: true,
	LocaleDeDE: true, LocaleEs419: true, LocaleEsES: true, LocaleEsLA: true,
	LocaleFrFR: true, LocaleHiIN: true, LocaleItIT: true, LocalePtBR: true,
	LocalePtPT: true, LocaleRuRU: true, LocaleJaJP: true, LocaleZhCN: true,
	LocaleZhTW: true, LocaleKoKR: true,
}

// IsKnown reports whether l is one of the predefined locales
func (l Locale) IsKnown() bool {
	return knownLocales[l]
}

func (l Locale) String() string {
	return string(l)
}
