package filters

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func cloneValues(in url.Values) url.Values {
	out := make(url.Values, len(in))
	for key, list := range in {
		out[key] = append([]string(nil), list...)
	}
	return out
}

// patchField writes the encoded patch value into values, or deletes the key
// when the patch clears it or encodes to an empty string.
func patchField[T any](values url.Values, key string, change Change[T], encode func(T) string) {
	if !change.Touched() {
		return
	}
	v, ok := change.Value()
	if !ok {
		values.Del(key)
		return
	}
	encoded := encode(v)
	if encoded == "" {
		values.Del(key)
		return
	}
	values.Set(key, encoded)
}

// applyField merges a patch into a parsed field. decode must normalize the
// encoded form the same way the parser does.
func applyField[T any](current T, change Change[T], encode func(T) string, decode func(string) T) T {
	if !change.Touched() {
		return current
	}
	v, ok := change.Value()
	if !ok {
		var zero T
		return zero
	}
	return decode(encode(v))
}

func trimmed(raw string) string {
	return strings.TrimSpace(raw)
}

func parsePositiveInt64(raw string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}

func formatPositiveInt64(v int64) string {
	if v <= 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}

func parseIntInRange(raw string, lo, hi int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < lo || v > hi {
		return 0
	}
	return v
}

func formatIntInRange(v, lo, hi int) string {
	if v < lo || v > hi {
		return ""
	}
	return strconv.Itoa(v)
}

// parseIntList splits a comma list, dropping invalid and non-positive items.
// The result is de-duplicated and sorted; nil when nothing survives.
func parseIntList(raw string) []int64 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	seen := make(map[int64]struct{})
	out := make([]int64, 0)
	for _, part := range strings.Split(raw, ",") {
		v := parsePositiveInt64(part)
		if v == 0 {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func formatIntList(list []int64) string {
	parts := make([]string, 0, len(list))
	for _, v := range list {
		parts = append(parts, strconv.FormatInt(v, 10))
	}
	return strings.Join(parts, ",")
}

func normalizeIntList(list []int64) []int64 {
	return parseIntList(formatIntList(list))
}

func parseDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if _, err := time.Parse(dateLayout, raw); err != nil {
		return ""
	}
	return raw
}

func parseBool(raw string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	default:
		return false, false
	}
}
