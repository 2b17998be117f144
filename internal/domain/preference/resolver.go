package preference

import "strings"

// Source names the candidate that produced a resolved value.
type Source string

const (
	SourceCookie  Source = "cookie"
	SourceStored  Source = "stored"
	SourceInitial Source = "initial"
	SourceDefault Source = "default"
)

// Candidates are the raw, already-sanitized inputs for one preference in
// precedence order. A nil pointer means the source had nothing.
type Candidates struct {
	Cookie  *string
	Stored  *string
	Initial *string
}

type candidate struct {
	source Source
	value  *string
}

func (c Candidates) ordered() []candidate {
	return []candidate{
		{source: SourceCookie, value: c.Cookie},
		{source: SourceStored, value: c.Stored},
		{source: SourceInitial, value: c.Initial},
	}
}

// LanguageResolution is the effective language and where it came from.
type LanguageResolution struct {
	Language Language
	Source   Source
}

// CookieStale reports whether the language cookie disagrees with the result.
func (r LanguageResolution) CookieStale() bool {
	return r.Source != SourceCookie
}

// ResolveLanguage picks the first candidate that normalizes to a supported
// language, in cookie, stored, initial order. It never fails.
func ResolveLanguage(c Candidates) LanguageResolution {
	for _, cand := range c.ordered() {
		if cand.value == nil {
			continue
		}
		if lang, ok := NormalizeLanguage(*cand.value); ok {
			return LanguageResolution{Language: lang, Source: cand.source}
		}
	}
	return LanguageResolution{Language: DefaultLanguage, Source: SourceDefault}
}

// TournamentResolution is the effective tournament id and its source.
type TournamentResolution struct {
	TournamentID string
	Source       Source
}

func (r TournamentResolution) CookieStale() bool {
	return r.Source != SourceCookie
}

// NormalizeTournamentID trims and lowercases raw, returning it when known
// accepts it.
func NormalizeTournamentID(raw string, known func(id string) bool) (string, bool) {
	id := strings.ToLower(strings.TrimSpace(raw))
	if id == "" || known == nil || !known(id) {
		return "", false
	}
	return id, true
}

// ResolveTournament mirrors ResolveLanguage for tournament ids; fallback is
// used when no candidate is known.
func ResolveTournament(c Candidates, known func(id string) bool, fallback string) TournamentResolution {
	for _, cand := range c.ordered() {
		if cand.value == nil {
			continue
		}
		if id, ok := NormalizeTournamentID(*cand.value, known); ok {
			return TournamentResolution{TournamentID: id, Source: cand.source}
		}
	}
	return TournamentResolution{TournamentID: fallback, Source: SourceDefault}
}
