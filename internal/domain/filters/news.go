package filters

import (
	"net/url"
	"strings"
)

const (
	KeyChampionshipCode = "championship_code"
	KeyArticleType      = "article_type"
	KeySearch           = "search"
	KeySort             = "sort"
	KeyDateFrom         = "dateFrom"
	KeyDateTo           = "dateTo"
)

type ArticleType string

const (
	ArticleNews    ArticleType = "news"
	ArticleArticle ArticleType = "article"
	ArticleVideo   ArticleType = "video"
	ArticlePhoto   ArticleType = "photo"
)

func ParseArticleType(raw string) ArticleType {
	switch v := ArticleType(strings.ToLower(strings.TrimSpace(raw))); v {
	case ArticleNews, ArticleArticle, ArticleVideo, ArticlePhoto:
		return v
	default:
		return ""
	}
}

type Sort string

const (
	SortDateDesc Sort = "date_desc"
	SortDateAsc  Sort = "date_asc"
	SortPopular  Sort = "popular"
)

func ParseSort(raw string) Sort {
	switch v := Sort(strings.ToLower(strings.TrimSpace(raw))); v {
	case SortDateDesc, SortDateAsc, SortPopular:
		return v
	default:
		return ""
	}
}

// News is the parsed news listing filter state. Zero fields are absent.
type News struct {
	ChampionshipCode string      `json:"championship_code,omitempty"`
	ArticleType      ArticleType `json:"article_type,omitempty"`
	Search           string      `json:"search,omitempty"`
	Sort             Sort        `json:"sort,omitempty"`
	DateFrom         string      `json:"dateFrom,omitempty"`
	DateTo           string      `json:"dateTo,omitempty"`
}

type NewsPatch struct {
	ChampionshipCode Change[string]
	ArticleType      Change[ArticleType]
	Search           Change[string]
	Sort             Change[Sort]
	DateFrom         Change[string]
	DateTo           Change[string]
}

func ParseNews(values url.Values) News {
	return News{
		ChampionshipCode: trimmed(values.Get(KeyChampionshipCode)),
		ArticleType:      ParseArticleType(values.Get(KeyArticleType)),
		Search:           trimmed(values.Get(KeySearch)),
		Sort:             ParseSort(values.Get(KeySort)),
		DateFrom:         parseDate(values.Get(KeyDateFrom)),
		DateTo:           parseDate(values.Get(KeyDateTo)),
	}
}

func (n News) Values() url.Values {
	values := url.Values{}
	setIf(values, KeyChampionshipCode, trimmed(n.ChampionshipCode))
	setIf(values, KeyArticleType, formatArticleType(n.ArticleType))
	setIf(values, KeySearch, trimmed(n.Search))
	setIf(values, KeySort, formatSort(n.Sort))
	setIf(values, KeyDateFrom, parseDate(n.DateFrom))
	setIf(values, KeyDateTo, parseDate(n.DateTo))
	return values
}

func BuildNews(current url.Values, patch NewsPatch) url.Values {
	out := cloneValues(current)
	patchField(out, KeyChampionshipCode, patch.ChampionshipCode, trimmed)
	patchField(out, KeyArticleType, patch.ArticleType, formatArticleType)
	patchField(out, KeySearch, patch.Search, trimmed)
	patchField(out, KeySort, patch.Sort, formatSort)
	patchField(out, KeyDateFrom, patch.DateFrom, parseDate)
	patchField(out, KeyDateTo, patch.DateTo, parseDate)
	return out
}

func ApplyNews(current News, patch NewsPatch) News {
	out := current
	out.ChampionshipCode = applyField(out.ChampionshipCode, patch.ChampionshipCode, trimmed, trimmed)
	out.ArticleType = applyField(out.ArticleType, patch.ArticleType, formatArticleType, ParseArticleType)
	out.Search = applyField(out.Search, patch.Search, trimmed, trimmed)
	out.Sort = applyField(out.Sort, patch.Sort, formatSort, ParseSort)
	out.DateFrom = applyField(out.DateFrom, patch.DateFrom, parseDate, parseDate)
	out.DateTo = applyField(out.DateTo, patch.DateTo, parseDate, parseDate)
	return out
}

func formatArticleType(v ArticleType) string { return string(ParseArticleType(string(v))) }

func formatSort(v Sort) string { return string(ParseSort(string(v))) }
