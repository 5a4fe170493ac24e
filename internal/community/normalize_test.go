package community

import (
	"encoding/json"
	"strings"
	"testing"

	"callboard/internal/api"
	"callboard/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePost(t *testing.T, raw string) api.RawPost {
	t.Helper()
	var post api.RawPost
	require.NoError(t, json.Unmarshal([]byte(raw), &post))
	return post
}

func decodeGig(t *testing.T, raw string) api.RawGig {
	t.Helper()
	var gig api.RawGig
	require.NoError(t, json.Unmarshal([]byte(raw), &gig))
	return gig
}

func TestNormalizePost_Defaults(t *testing.T) {
	post := NormalizePost(decodePost(t, `{"id": 42}`))

	assert.Equal(t, "42", post.ID)
	assert.Equal(t, "Unknown", post.Author)
	assert.Equal(t, "General", post.Category)
	assert.Equal(t, 0, post.Likes)
	assert.Equal(t, 0, post.Comments)
	assert.Equal(t, 0, post.Views)
	assert.False(t, post.IsLiked)
	assert.Nil(t, post.FeaturedImage)
}

func TestNormalizePost_AuthorFallbackChain(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"author present", `{"id":"1","author":"Mira","username":"mira99"}`, "Mira"},
		{"falls to username", `{"id":"1","username":"mira99"}`, "mira99"},
		{"blank author skipped", `{"id":"1","author":"  ","username":"mira99"}`, "mira99"},
		{"both missing", `{"id":"1"}`, "Unknown"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePost(decodePost(t, tc.raw)).Author)
		})
	}
}

func TestNormalizePost_ContentTruncation(t *testing.T) {
	long := strings.Repeat("x", 250)
	post := NormalizePost(decodePost(t, `{"id":"1","content":"`+long+`"}`))

	assert.Len(t, post.Content, 203)
	assert.True(t, strings.HasSuffix(post.Content, "..."))

	exact := strings.Repeat("y", 200)
	post = NormalizePost(decodePost(t, `{"id":"1","content":"`+exact+`"}`))
	assert.Equal(t, exact, post.Content)
}

func TestNormalizePost_NumericCoercion(t *testing.T) {
	// Counts arrive as numbers, numeric strings, or garbage.
	post := NormalizePost(decodePost(t, `{"id":"1","likes":"7","comments":"nope","views":-3}`))

	assert.Equal(t, 7, post.Likes)
	assert.Equal(t, 0, post.Comments)
	assert.Equal(t, 0, post.Views)
}

func TestNormalizeGig_Defaults(t *testing.T) {
	gig := NormalizeGig(decodeGig(t, `{"id": 9, "user_id": 3}`))

	assert.Equal(t, "9", gig.ID)
	assert.Equal(t, "3", gig.OwnerID)
	assert.Equal(t, "USD", gig.BudgetCurrency)
	assert.Equal(t, "open", gig.Status)
	assert.Equal(t, "Community Member", gig.Poster.DisplayName)
	assert.Nil(t, gig.BudgetMin)
	assert.Nil(t, gig.BudgetMax)
	assert.Empty(t, gig.SkillsRequired)
	assert.Empty(t, gig.Roles)
}

func TestNormalizeGig_PosterFallbackChain(t *testing.T) {
	gig := NormalizeGig(decodeGig(t, `{"id":"1","username":"beatmaker"}`))
	assert.Equal(t, "beatmaker", gig.Poster.DisplayName)
	require.NotNil(t, gig.Poster.Username)
	assert.Equal(t, "beatmaker", *gig.Poster.Username)

	gig = NormalizeGig(decodeGig(t, `{"id":"1","display_name":"Beat Maker","username":"beatmaker"}`))
	assert.Equal(t, "Beat Maker", gig.Poster.DisplayName)
}

func TestNormalizeGig_SkillsRoundTrip(t *testing.T) {
	fromCSV := NormalizeGig(decodeGig(t, `{"id":"1","skills_required":" mixing, mastering,,mixing , vocals "}`))
	fromArray := NormalizeGig(decodeGig(t, `{"id":"1","skills_required":[" mixing","mastering","","mixing","vocals "]}`))

	want := []string{"mixing", "mastering", "vocals"}
	assert.Equal(t, want, fromCSV.SkillsRequired)
	assert.Equal(t, want, fromArray.SkillsRequired)
}

func TestNormalizeGig_IndependentBudgets(t *testing.T) {
	gig := NormalizeGig(decodeGig(t, `{"id":"1","budget_min":"250.5"}`))
	require.NotNil(t, gig.BudgetMin)
	assert.Equal(t, 250.5, *gig.BudgetMin)
	assert.Nil(t, gig.BudgetMax)
}

func TestNormalizeRole_FallbackChains(t *testing.T) {
	gig := NormalizeGig(decodeGig(t, `{"id":"1","roles":[
		{"id":"r1","name":"Vocalist","requiredSlots":2,"approvedCount":1},
		{"id":7,"required_slots":"3","approved_count":"2","pending_count":1},
		{"name":"  "}
	]}`))
	require.Len(t, gig.Roles, 3)

	first := gig.Roles[0]
	assert.Equal(t, "r1", first.ID)
	assert.Equal(t, "Vocalist", first.Name)
	assert.Equal(t, 2, first.RequiredSlots)
	assert.Equal(t, 1, first.ApprovedCount)

	second := gig.Roles[1]
	assert.Equal(t, "7", second.ID)
	assert.Equal(t, "Role", second.Name)
	assert.Equal(t, 3, second.RequiredSlots)
	assert.Equal(t, 2, second.ApprovedCount)
	assert.Equal(t, 1, second.PendingCount)

	third := gig.Roles[2]
	assert.NotEmpty(t, third.ID, "missing role ids are generated")
	assert.Equal(t, "Role", third.Name)
	assert.Equal(t, 1, third.RequiredSlots)
	assert.Equal(t, 0, third.ApprovedCount)
}

func TestNormalizeRole_ZeroSlotsPreserved(t *testing.T) {
	// Zero is the unlimited sentinel, not a missing value.
	gig := NormalizeGig(decodeGig(t, `{"id":"1","roles":[{"id":"r1","requiredSlots":0}]}`))
	require.Len(t, gig.Roles, 1)
	assert.Equal(t, 0, gig.Roles[0].RequiredSlots)
}

func TestNormalizeRole_DescriptionTrimmed(t *testing.T) {
	gig := NormalizeGig(decodeGig(t, `{"id":"1","roles":[
		{"id":"r1","description":"  lead vocals  "},
		{"id":"r2","description":"   "}
	]}`))
	require.Len(t, gig.Roles, 2)
	require.NotNil(t, gig.Roles[0].Description)
	assert.Equal(t, "lead vocals", *gig.Roles[0].Description)
	assert.Nil(t, gig.Roles[1].Description)
}

func TestNormalizePost_NoUndefinedRequiredFields(t *testing.T) {
	// Empty object in, fully-populated view model out.
	post := NormalizePost(api.RawPost{})
	assert.NotNil(t, post)
	assert.Equal(t, "Unknown", post.Author)
	assert.Equal(t, "General", post.Category)
}

func TestNormalizeApplication(t *testing.T) {
	var raw api.RawApplication
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"gig_id":2,"role_id":3,"role_name":"Mixer"}`), &raw))

	app := NormalizeApplication(raw)
	assert.Equal(t, "2", app.GigID)
	require.NotNil(t, app.RoleID)
	assert.Equal(t, "3", *app.RoleID)
	assert.Equal(t, utils.PtrString(app.RoleName), "Mixer")
	assert.Equal(t, "pending", app.Status)
}
