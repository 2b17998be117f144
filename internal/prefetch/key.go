package prefetch

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"

	"github.com/kzleague/league-site/internal/domain/preference"
)

// Key identifies one cacheable resource: domain, parameters, language.
// The zero Key means "no request". Build keys only through the builders in
// this package so server and client always agree on them.
type Key string

func (k Key) IsZero() bool {
	return k == ""
}

func (k Key) String() string {
	return string(k)
}

// Resource is the domain segment of the key, e.g. "table".
func (k Key) Resource() string {
	domain, _, _ := strings.Cut(string(k), ":")
	return domain
}

const emptySignature = "-"

func newKey(domain string, lang preference.Language, params ...string) Key {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString(domain)
	for _, param := range params {
		_ = buf.WriteByte(':')
		_, _ = buf.WriteString(param)
	}
	_ = buf.WriteByte(':')
	_, _ = buf.WriteString(preference.LanguageOrDefault(string(lang)).String())
	return Key(buf.String())
}

// SeasonScope is the key prefix shared by every key of resource in one
// season, regardless of parameters and language. It is "" for resources not
// keyed by season first.
func SeasonScope(resource string, seasonID int64) string {
	if seasonID <= 0 {
		return ""
	}
	switch resource {
	case ResourceTable, ResourceMatches, ResourcePlayerStats, ResourceTeamStats, ResourceBracket:
		return resource + ":" + id(seasonID) + ":"
	default:
		return ""
	}
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

// signature is the canonical form of a parameter set: keys sorted, values
// escaped, so neither insertion order nor separators can collide.
func signature(values url.Values) string {
	encoded := values.Encode()
	if encoded == "" {
		return emptySignature
	}
	return encoded
}
