package bcma

import "github.com/n3dsbcma/bcma/internal/omap"

// Region is one of the six BCMA manual regions (spec §3.1).
type Region string

const (
	RegionEUR Region = "EUR"
	RegionUSA Region = "USA"
	RegionCHN Region = "CHN"
	RegionTWN Region = "TWN"
	RegionJPN Region = "JPN"
	RegionKOR Region = "KOR"
)

// permittedLanguages is the fixed region -> language-code set (spec
// §3.1), grounded on editor.py's LangInfo.LANGS.
var permittedLanguages = map[Region][]string{
	RegionEUR: {"fr", "en", "ru", "pt", "nl", "es", "it", "de"},
	RegionUSA: {"en", "es", "fr"},
	RegionJPN: {"ja"},
	RegionTWN: {"tc"},
	RegionCHN: {"sc"},
	RegionKOR: {"ko"},
}

// languageDisplayNames maps a language code to its native display name,
// grounded on editor.py's LangInfo.SHORT_TO_TRANSLATED. The GUI editor
// itself is out of scope, but this table is plain domain metadata with no
// rendering dependency (spec.md's supplemented-features list).
var languageDisplayNames = map[string]string{
	"fr": "Français",
	"en": "English",
	"es": "Español",
	"it": "Italiano",
	"pt": "Português",
	"de": "Deutsch",
	"nl": "Nederlands",
	"ru": "Русский",
	"ja": "日本語",
	"tc": "繁體中文",
	"sc": "简体中文",
	"ko": "한국어",
}

// IsLanguagePermitted reports whether lang is one of region's permitted
// languages (spec §3.1 invariant).
func IsLanguagePermitted(region Region, lang string) bool {
	for _, l := range permittedLanguages[region] {
		if l == lang {
			return true
		}
	}
	return false
}

// PermittedLanguages returns region's fixed language set, in the fixed
// order from editor.py's LangInfo.LANGS (not alphabetical — preserved so
// the pairing with §4.8's "sorted ascending by <region>_<lang>" emission
// order is an explicit, separate step rather than relying on map order).
func PermittedLanguages(region Region) []string {
	out := make([]string, len(permittedLanguages[region]))
	copy(out, permittedLanguages[region])
	return out
}

// LanguageDisplayName returns the native display name for a language
// code, or the code itself if unrecognised.
func LanguageDisplayName(code string) string {
	if name, ok := languageDisplayNames[code]; ok {
		return name
	}
	return code
}

// newRegionLanguageMap returns an empty ordered region -> language ->
// PagesBundle map for a Manual under construction.
func newRegionLanguageMap() *omap.Map[*omap.Map[*PagesBundle]] {
	return omap.New[*omap.Map[*PagesBundle]]()
}
