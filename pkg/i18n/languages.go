package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const DefaultLanguage = "en-IN"

type Language struct {
	Code           string `json:"code"`
	DisplayName    string `json:"display_name"`
	EnglishName    string `json:"english_name"`
	VoiceProfileID string `json:"voice_profile_id"`
}

type IRegistry interface {
	Resolve(code string) Language
	ResolveVoiceProfile(code string) string
	Lookup(code string) (Language, bool)
	List() []Language
	Default() Language
}

// Registry is read-only after NewRegistry returns and safe for concurrent use.
type Registry struct {
	languages []Language
	byCode    map[string]Language
	byBase    map[string]Language
	byName    map[string]Language
	fallback  Language
}

func NewRegistry() *Registry {
	languages := supportedLanguages()

	r := &Registry{
		languages: languages,
		byCode:    make(map[string]Language, len(languages)),
		byBase:    make(map[string]Language, len(languages)),
		byName:    make(map[string]Language, len(languages)),
	}

	for _, lang := range languages {
		r.byCode[strings.ToLower(lang.Code)] = lang
		r.byName[strings.ToLower(lang.EnglishName)] = lang

		base := baseOf(lang.Code)
		// first registered locale wins for its base language (en -> en-IN)
		if _, exists := r.byBase[base]; !exists {
			r.byBase[base] = lang
		}
	}

	r.fallback = r.byCode[strings.ToLower(DefaultLanguage)]
	return r
}

// Lookup reports whether code maps to a registered locale, trying an exact
// match, the canonical BCP 47 form, the base language, and finally the
// English language name ("hindi") that some transcribers report.
func (r *Registry) Lookup(code string) (Language, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Language{}, false
	}

	if lang, ok := r.byCode[strings.ToLower(code)]; ok {
		return lang, true
	}

	if tag, err := language.Parse(strings.ReplaceAll(code, "_", "-")); err == nil {
		if lang, ok := r.byCode[strings.ToLower(tag.String())]; ok {
			return lang, true
		}
		base, _ := tag.Base()
		if lang, ok := r.byBase[base.String()]; ok {
			return lang, true
		}
	}

	if lang, ok := r.byName[strings.ToLower(code)]; ok {
		return lang, true
	}

	return Language{}, false
}

func (r *Registry) Resolve(code string) Language {
	if lang, ok := r.Lookup(code); ok {
		return lang
	}
	return r.fallback
}

func (r *Registry) ResolveVoiceProfile(code string) string {
	return r.Resolve(code).VoiceProfileID
}

func (r *Registry) List() []Language {
	out := make([]Language, len(r.languages))
	copy(out, r.languages)
	return out
}

func (r *Registry) Default() Language {
	return r.fallback
}

func baseOf(code string) string {
	base, _, _ := strings.Cut(strings.ToLower(code), "-")
	return base
}

func supportedLanguages() []Language {
	return []Language{
		{Code: "en-IN", DisplayName: "English (India)", EnglishName: "English", VoiceProfileID: "en-IN-Wavenet-D"},
		{Code: "en-US", DisplayName: "English (US)", EnglishName: "English US", VoiceProfileID: "en-US-Wavenet-D"},
		{Code: "hi-IN", DisplayName: "हिन्दी", EnglishName: "Hindi", VoiceProfileID: "hi-IN-Wavenet-D"},
		{Code: "bn-IN", DisplayName: "বাংলা", EnglishName: "Bengali", VoiceProfileID: "bn-IN-Wavenet-A"},
		{Code: "te-IN", DisplayName: "తెలుగు", EnglishName: "Telugu", VoiceProfileID: "te-IN-Standard-A"},
		{Code: "mr-IN", DisplayName: "मराठी", EnglishName: "Marathi", VoiceProfileID: "mr-IN-Wavenet-A"},
		{Code: "ta-IN", DisplayName: "தமிழ்", EnglishName: "Tamil", VoiceProfileID: "ta-IN-Wavenet-A"},
		{Code: "gu-IN", DisplayName: "ગુજરાતી", EnglishName: "Gujarati", VoiceProfileID: "gu-IN-Wavenet-A"},
		{Code: "kn-IN", DisplayName: "ಕನ್ನಡ", EnglishName: "Kannada", VoiceProfileID: "kn-IN-Wavenet-A"},
		{Code: "ml-IN", DisplayName: "മലയാളം", EnglishName: "Malayalam", VoiceProfileID: "ml-IN-Wavenet-A"},
		{Code: "pa-IN", DisplayName: "ਪੰਜਾਬੀ", EnglishName: "Punjabi", VoiceProfileID: "pa-IN-Wavenet-A"},
		{Code: "ur-IN", DisplayName: "اردو", EnglishName: "Urdu", VoiceProfileID: "ur-IN-Wavenet-A"},
		{Code: "or-IN", DisplayName: "ଓଡ଼ିଆ", EnglishName: "Odia", VoiceProfileID: "or-IN-Standard-A"},
		{Code: "as-IN", DisplayName: "অসমীয়া", EnglishName: "Assamese", VoiceProfileID: "as-IN-Standard-A"},
		{Code: "ne-NP", DisplayName: "नेपाली", EnglishName: "Nepali", VoiceProfileID: "ne-NP-Standard-A"},
	}
}
