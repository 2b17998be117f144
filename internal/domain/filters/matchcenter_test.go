package filters

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()

	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return values
}

func TestParseMatchCenter(t *testing.T) {
	t.Parallel()

	got := ParseMatchCenter(mustQuery(t, "season_id=61&group=A&tours=3,1,x,3,-2&team_ids=&month=13&year=2025&status=LIVE&hide_past=false&extra=1"))

	hidePast := false
	assert.Equal(t, MatchCenter{
		SeasonID: 61,
		Group:    "A",
		Tours:    []int64{1, 3},
		Year:     2025,
		Status:   StatusLive,
		HidePast: &hidePast,
	}, got)
}

func TestParseMatchCenter_FinalClearsGroup(t *testing.T) {
	t.Parallel()

	got := ParseMatchCenter(mustQuery(t, "group=B&final=true"))
	assert.True(t, got.Final)
	assert.Empty(t, got.Group)
	assert.Equal(t, "final=true", got.Values().Encode())
}

func TestParseMatchCenter_DropsUnknownEnums(t *testing.T) {
	t.Parallel()

	got := ParseMatchCenter(mustQuery(t, "status=postponed&hide_past=maybe&final=yes"))
	assert.Equal(t, MatchCenter{}, got)
	assert.Empty(t, got.Values())
}

func TestBuildMatchCenter_MergesPatch(t *testing.T) {
	t.Parallel()

	current := mustQuery(t, "season_id=61&status=live&page=2")
	out := BuildMatchCenter(current, MatchCenterPatch{
		Status:   Clear[Status](),
		Tours:    Set([]int64{5, 2, 5}),
		HidePast: Set(false),
		Month:    Set(0),
	})

	assert.Equal(t, "hide_past=false&page=2&season_id=61&tours=2%2C5", out.Encode())
	// Input is not mutated.
	assert.Equal(t, "live", current.Get("status"))
}

func TestBuildMatchCenter_FinalFalseDeletesKey(t *testing.T) {
	t.Parallel()

	out := BuildMatchCenter(mustQuery(t, "final=true&season_id=61"), MatchCenterPatch{Final: Set(false)})
	assert.Equal(t, "season_id=61", out.Encode())
}

func TestBuildMatchCenter_FinalTrueDeletesGroup(t *testing.T) {
	t.Parallel()

	out := BuildMatchCenter(mustQuery(t, "group=A"), MatchCenterPatch{Final: Set(true)})
	assert.Equal(t, "final=true", out.Encode())

	// Setting group under an existing final is not observable.
	out = BuildMatchCenter(mustQuery(t, "final=true"), MatchCenterPatch{Group: Set("C")})
	assert.Equal(t, "final=true", out.Encode())
}

func TestMatchCenter_RoundTripLaw(t *testing.T) {
	t.Parallel()

	queries := []string{
		"",
		"season_id=61&group=A",
		"final=true&group=B&tours=1,2",
		"final=1&group=B",
		"season_id=abc&status=bogus&month=4&year=1800&hide_past=true",
		"team_ids=9,3,3&tours=&unrelated=keep",
	}
	patches := []MatchCenterPatch{
		{},
		{Final: Set(true)},
		{Final: Set(false)},
		{Final: Clear[bool]()},
		{Group: Set("C")},
		{Group: Set("  "), Status: Set(StatusFinished)},
		{Final: Set(false), Group: Set("D")},
		{SeasonID: Set(int64(200)), Tours: Set([]int64{-1, 4}), TeamIDs: Clear[[]int64]()},
		{Month: Set(12), Year: Set(2026), HidePast: Set(false)},
		{Status: Set(Status("nope")), HidePast: Clear[bool]()},
		{SeasonID: Set(int64(-5)), Tours: Set([]int64{})},
	}

	for _, raw := range queries {
		for i, patch := range patches {
			qs := mustQuery(t, raw)
			got := ParseMatchCenter(BuildMatchCenter(qs, patch))
			want := ApplyMatchCenter(ParseMatchCenter(qs), patch)
			assert.Equal(t, want, got, "query %q patch %d", raw, i)
			if got.Final {
				assert.Empty(t, got.Group, "query %q patch %d", raw, i)
			}
		}
	}
}

func TestMatchCenter_ValuesParseIdentity(t *testing.T) {
	t.Parallel()

	hidePast := true
	in := MatchCenter{SeasonID: 61, Tours: []int64{1, 2}, TeamIDs: []int64{7}, Month: 5, Year: 2025, Status: StatusUpcoming, HidePast: &hidePast}
	assert.Equal(t, in, ParseMatchCenter(in.Values()))
}
