package community

import (
	"fmt"

	"callboard/pkg/types"
)

// Role slot accounting. A RequiredSlots of zero is the unlimited sentinel:
// capacity math never runs against it, only the unlimited labels.

const (
	UnlimitedSpotsLabel     = "Unlimited spots"
	UnlimitedApprovalsLabel = "Unlimited approvals"
)

// Unlimited reports whether the role has no slot cap.
func Unlimited(role types.GigRole) bool {
	return role.RequiredSlots == 0
}

// RemainingSlots returns how many approvals the role can still take. The
// second return is false for unlimited roles, whose remainder is undefined.
func RemainingSlots(role types.GigRole) (int, bool) {
	if Unlimited(role) {
		return 0, false
	}
	remaining := role.RequiredSlots - role.ApprovedCount
	if remaining < 0 {
		remaining = 0
	}
	return remaining, true
}

// SpotsLabel renders the capacity of a role for display.
func SpotsLabel(role types.GigRole) string {
	remaining, bounded := RemainingSlots(role)
	if !bounded {
		return UnlimitedSpotsLabel
	}
	if remaining == 1 {
		return "1 spot"
	}
	return fmt.Sprintf("%d spots", remaining)
}

// ApprovalsLabel renders approval progress for display.
func ApprovalsLabel(role types.GigRole) string {
	if Unlimited(role) {
		return UnlimitedApprovalsLabel
	}
	return fmt.Sprintf("%d of %d approved", role.ApprovedCount, role.RequiredSlots)
}

// RoleByID finds a role on a gig, or false when the id is not present.
func RoleByID(gig *types.CommunityGig, roleID string) (types.GigRole, bool) {
	for _, role := range gig.Roles {
		if role.ID == roleID {
			return role, true
		}
	}
	return types.GigRole{}, false
}

// ValidSelection reports whether a previously chosen role id still exists on
// the gig. Selections must never point at a role a refetch removed.
func ValidSelection(gig *types.CommunityGig, roleID string) bool {
	if roleID == "" {
		return false
	}
	_, ok := RoleByID(gig, roleID)
	return ok
}

// PruneSelections drops per-gig role selections whose gig disappeared or
// whose role id is no longer on the refetched role list. The map is edited
// in place.
func PruneSelections(selected map[string]string, gigs []*types.CommunityGig) {
	byID := make(map[string]*types.CommunityGig, len(gigs))
	for _, gig := range gigs {
		byID[gig.ID] = gig
	}

	for gigID, roleID := range selected {
		gig, ok := byID[gigID]
		if !ok || !ValidSelection(gig, roleID) {
			delete(selected, gigID)
		}
	}
}

// CanApply checks whether an apply action is permitted: gigs that define
// roles require an explicit selection, gigs without roles do not. The
// returned message is user-facing.
func CanApply(gig *types.CommunityGig, selectedRoleID string) (bool, string) {
	if len(gig.Roles) == 0 {
		return true, ""
	}
	if !ValidSelection(gig, selectedRoleID) {
		return false, "Select a role before applying"
	}
	return true, ""
}
