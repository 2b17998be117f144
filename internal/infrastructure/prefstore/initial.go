package prefstore

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/kzleague/league-site/internal/domain/preference"
)

// Kazakh is "kk" in BCP 47; the site calls it "kz".
var acceptMatcher = language.NewMatcher([]language.Tag{
	language.Kazakh,
	language.Russian,
})

// InitialLanguage is the request's own language hint: a supported ?lang=
// parameter, otherwise the best Accept-Language match. It is nil when the
// request says nothing usable.
func InitialLanguage(r *http.Request) *string {
	if r == nil {
		return nil
	}

	if lang, ok := preference.NormalizeLanguage(r.URL.Query().Get("lang")); ok {
		value := lang.String()
		return &value
	}

	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return nil
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return nil
	}
	_, index, confidence := acceptMatcher.Match(tags...)
	if confidence == language.No {
		return nil
	}

	var lang preference.Language
	switch index {
	case 0:
		lang = preference.LanguageKZ
	case 1:
		lang = preference.LanguageRU
	default:
		return nil
	}
	value := lang.String()
	return &value
}
