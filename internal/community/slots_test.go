package community

import (
	"testing"

	"callboard/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestSpotsLabel(t *testing.T) {
	cases := []struct {
		name string
		role types.GigRole
		want string
	}{
		{"unlimited sentinel", types.GigRole{RequiredSlots: 0, ApprovedCount: 5}, "Unlimited spots"},
		{"plural", types.GigRole{RequiredSlots: 4, ApprovedCount: 1}, "3 spots"},
		{"singular", types.GigRole{RequiredSlots: 2, ApprovedCount: 1}, "1 spot"},
		{"overfull floors at zero", types.GigRole{RequiredSlots: 2, ApprovedCount: 5}, "0 spots"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SpotsLabel(tc.role))
		})
	}
}

func TestApprovalsLabel(t *testing.T) {
	assert.Equal(t, "Unlimited approvals", ApprovalsLabel(types.GigRole{RequiredSlots: 0}))
	assert.Equal(t, "2 of 3 approved", ApprovalsLabel(types.GigRole{RequiredSlots: 3, ApprovedCount: 2}))
}

func TestRemainingSlots_NeverNegative(t *testing.T) {
	remaining, bounded := RemainingSlots(types.GigRole{RequiredSlots: 1, ApprovedCount: 9})
	assert.True(t, bounded)
	assert.Equal(t, 0, remaining)

	_, bounded = RemainingSlots(types.GigRole{RequiredSlots: 0})
	assert.False(t, bounded, "unlimited roles have no remainder")
}

func TestPruneSelections(t *testing.T) {
	gigs := []*types.CommunityGig{
		{ID: "g1", Roles: []types.GigRole{{ID: "r1"}, {ID: "r2"}}},
		{ID: "g2", Roles: []types.GigRole{{ID: "r3"}}},
	}

	selected := map[string]string{
		"g1": "r2",      // still present, survives
		"g2": "r-gone",  // role removed by refetch
		"g3": "r9",      // gig no longer in the collection
	}

	PruneSelections(selected, gigs)

	assert.Equal(t, map[string]string{"g1": "r2"}, selected)
}

func TestCanApply(t *testing.T) {
	noRoles := &types.CommunityGig{ID: "g1"}
	ok, _ := CanApply(noRoles, "")
	assert.True(t, ok, "gigs without roles need no selection")

	withRoles := &types.CommunityGig{ID: "g2", Roles: []types.GigRole{{ID: "r1"}}}

	ok, reason := CanApply(withRoles, "")
	assert.False(t, ok)
	assert.Equal(t, "Select a role before applying", reason)

	ok, _ = CanApply(withRoles, "r1")
	assert.True(t, ok)

	ok, _ = CanApply(withRoles, "r-unknown")
	assert.False(t, ok, "stale role ids do not count as a selection")
}
