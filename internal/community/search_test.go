package community

import (
	"testing"

	"callboard/internal/utils"
	"callboard/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostHaystack_OmitsEmptyFields(t *testing.T) {
	post := &types.CommunityPost{Title: "Mixdown tips", Author: "Mira"}

	// No double spaces from the missing content/category slots: a query like
	// "tips mira" must match, and "tips  mira" must not sneak in via joins.
	assert.Equal(t, "Mixdown tips Mira", PostHaystack(post))
}

func TestFilterPosts_BlankQueryReturnsSameSlice(t *testing.T) {
	posts := []*types.CommunityPost{{ID: "1", Title: "a"}, {ID: "2", Title: "b"}}

	got := FilterPosts(posts, "")
	assert.Same(t, &posts[0], &got[0], "blank query must not copy")
	assert.Len(t, FilterPosts(posts, "   "), 2)
}

func TestFilterPosts_CaseInsensitiveSubstring(t *testing.T) {
	posts := []*types.CommunityPost{
		{ID: "1", Title: "Album artwork commission", Category: "Showcase"},
		{ID: "2", Content: "looking for ARTWORK feedback"},
		{ID: "3", Author: "artless"},
	}

	got := FilterPosts(posts, "ArtWork")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestFilterPosts_Idempotent(t *testing.T) {
	posts := []*types.CommunityPost{{ID: "1", Title: "mix"}, {ID: "2", Title: "master"}}

	first := FilterPosts(posts, "mix")
	second := FilterPosts(posts, "mix")
	assert.Equal(t, first, second)
	// Input collection untouched.
	assert.Len(t, posts, 2)
}

func TestGigHaystack_Fields(t *testing.T) {
	gig := &types.CommunityGig{
		Title:           "Tour videographer",
		Description:     "three week run",
		GigType:         "contract",
		Category:        utils.StringPtr("video"),
		ExperienceLevel: utils.StringPtr("mid"),
		Location:        utils.StringPtr("Berlin"),
		Poster:          types.GigPoster{DisplayName: "Nadia", Username: utils.StringPtr("nadia_v")},
		SkillsRequired:  []string{"editing", "color grading"},
		Roles:           []types.GigRole{{Name: "Camera op"}},
	}

	hay := GigHaystack(gig)
	for _, want := range []string{"Tour videographer", "three week run", "contract", "video", "mid", "Berlin", "Nadia", "nadia_v", "editing", "color grading", "Camera op"} {
		assert.Contains(t, hay, want)
	}
}

func TestFilterGigs_RawFieldsNotDerivedLabels(t *testing.T) {
	// A remote gig with no "remote" text in any raw field: the haystack is
	// built from raw fields, so the rendered "Remote" badge does not match.
	gigs := []*types.CommunityGig{
		{ID: "1", Title: "Session drummer", IsRemote: true},
	}

	assert.Empty(t, FilterGigs(gigs, "remote"))

	gigs[0].Description = "remote-friendly studio session"
	assert.Len(t, FilterGigs(gigs, "remote"), 1)
}

func TestFilterGigs_MatchesRoleNames(t *testing.T) {
	gigs := []*types.CommunityGig{
		{ID: "1", Title: "Short film", Roles: []types.GigRole{{Name: "Gaffer"}}},
		{ID: "2", Title: "Music video"},
	}

	got := FilterGigs(gigs, "gaffer")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}
