package prefstore

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		accept string
		want   *string
	}{
		{name: "query param wins", target: "/?lang=RU", accept: "kk", want: strPtr("ru")},
		{name: "unsupported query param falls back to header", target: "/?lang=xx", accept: "ru-RU", want: strPtr("ru")},
		{name: "unsupported query param without header", target: "/?lang=en", want: nil},
		{name: "kazakh header maps to kz", target: "/", accept: "kk-KZ,kk;q=0.9", want: strPtr("kz")},
		{name: "russian header", target: "/", accept: "ru-RU,ru;q=0.9,en;q=0.8", want: strPtr("ru")},
		{name: "unsupported header", target: "/", accept: "de-DE", want: nil},
		{name: "no hints", target: "/", want: nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			assert.Equal(t, tc.want, InitialLanguage(req))
		})
	}
}

func strPtr(v string) *string { return &v }
