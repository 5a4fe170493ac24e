package community

import (
	"strings"

	"callboard/internal/api"
	"callboard/pkg/types"

	"github.com/google/uuid"
)

const (
	contentPreviewLimit = 200
	ellipsis            = "..."

	defaultAuthor   = "Unknown"
	defaultCategory = "General"
	defaultPoster   = "Community Member"
	defaultCurrency = "USD"
	defaultStatus   = "open"
	defaultRoleName = "Role"
)

// NormalizePost maps one raw post record into the strict view model. Total:
// any combination of missing or malformed fields yields defaults, never an
// error.
func NormalizePost(raw api.RawPost) *types.CommunityPost {
	return &types.CommunityPost{
		ID:            raw.ID.String(),
		Title:         strOr(raw.Title, ""),
		Content:       truncateContent(strOr(raw.Content, "")),
		Author:        firstNonEmpty(raw.Author, raw.Username, defaultAuthor),
		AuthorID:      raw.UserID.String(),
		Category:      firstNonEmpty(raw.Category, nil, defaultCategory),
		Likes:         countOf(raw.Likes),
		Comments:      countOf(raw.Comments),
		Views:         countOf(raw.Views),
		CreatedAt:     strOr(raw.CreatedAt, ""),
		FeaturedImage: optional(raw.FeaturedImage),
		IsLiked:       raw.IsLiked != nil && *raw.IsLiked,
	}
}

// NormalizeGig maps one raw gig record into the strict view model.
func NormalizeGig(raw api.RawGig) *types.CommunityGig {
	roles := make([]types.GigRole, 0, len(raw.Roles))
	for _, r := range raw.Roles {
		roles = append(roles, normalizeRole(r))
	}

	return &types.CommunityGig{
		ID:                  raw.ID.String(),
		Title:               strOr(raw.Title, ""),
		Description:         strOr(raw.Description, ""),
		GigType:             strOr(raw.GigType, ""),
		Category:            optional(raw.Category),
		ExperienceLevel:     optional(raw.ExperienceLevel),
		Location:            optional(raw.Location),
		ContactEmail:        optional(raw.ContactEmail),
		ApplicationLink:     optional(raw.ApplicationLink),
		ApplicationDeadline: optional(raw.ApplicationDeadline),
		BudgetMin:           numberOrNil(raw.BudgetMin),
		BudgetMax:           numberOrNil(raw.BudgetMax),
		BudgetCurrency:      firstNonEmpty(raw.BudgetCurrency, nil, defaultCurrency),
		RateType:            optional(raw.RateType),
		IsRemote:            raw.IsRemote != nil && *raw.IsRemote,
		SkillsRequired:      cleanSkills(raw.SkillsRequired),
		Status:              firstNonEmpty(raw.Status, nil, defaultStatus),
		OwnerID:             raw.UserID.String(),
		Poster: types.GigPoster{
			DisplayName: firstNonEmpty(raw.DisplayName, raw.Username, defaultPoster),
			Username:    optional(raw.Username),
			Avatar:      optional(raw.Avatar),
		},
		Roles: roles,
	}
}

// normalizeRole resolves the dual camel/snake key pairs and invents an id
// when the backend sent none, so role selection always has a stable key.
// RequiredSlots of zero is meaningful (unlimited) and is preserved as sent.
func normalizeRole(raw api.RawRole) types.GigRole {
	id := raw.ID.String()
	if id == "" {
		id = uuid.NewString()
	}

	return types.GigRole{
		ID:            id,
		Name:          firstNonEmpty(raw.Name, nil, defaultRoleName),
		RequiredSlots: numberChain(1, raw.RequiredSlots, raw.RequiredSlotsSnake),
		ApprovedCount: numberChain(0, raw.ApprovedCount, raw.ApprovedCountSnake),
		PendingCount:  numberChain(0, raw.PendingCount, raw.PendingCountSnake),
		Description:   trimmedOptional(raw.Description),
	}
}

// NormalizeApplication keeps only what the applied-gigs reconciliation needs.
func NormalizeApplication(raw api.RawApplication) types.GigApplication {
	app := types.GigApplication{
		ID:       raw.ID.String(),
		GigID:    raw.GigID.String(),
		RoleName: optional(raw.RoleName),
		Status:   firstNonEmpty(raw.Status, nil, "pending"),
	}
	if raw.RoleID != nil && raw.RoleID.String() != "" {
		roleID := raw.RoleID.String()
		app.RoleID = &roleID
	}
	return app
}

// truncateContent caps post bodies at the preview limit plus an ellipsis.
// Content at or under the limit passes through untouched.
func truncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= contentPreviewLimit {
		return content
	}
	return string(runes[:contentPreviewLimit]) + ellipsis
}

// cleanSkills trims every entry, drops empties and deduplicates while
// preserving first-seen order. Array and comma-separated inputs come out
// identical.
func cleanSkills(raw api.StringList) []string {
	skills := make([]string, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		skills = append(skills, s)
	}
	return skills
}

// firstNonEmpty walks a two-candidate fallback chain and lands on def.
func firstNonEmpty(primary, secondary *string, def string) string {
	if primary != nil && strings.TrimSpace(*primary) != "" {
		return *primary
	}
	if secondary != nil && strings.TrimSpace(*secondary) != "" {
		return *secondary
	}
	return def
}

func strOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

// optional passes a pointer through, mapping empty strings to nil so
// templates can treat "" and absent identically.
func optional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

// trimmedOptional trims then applies the empty-is-nil rule.
func trimmedOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// countOf turns a loose numeric into a non-negative int, defaulting to zero.
func countOf(n api.FlexNumber) int {
	if !n.Valid || n.Value < 0 {
		return 0
	}
	return int(n.Value)
}

// numberChain returns the first finite candidate, else def. Values are
// accepted as sent, including zero.
func numberChain(def int, candidates ...api.FlexNumber) int {
	for _, c := range candidates {
		if c.Valid {
			return int(c.Value)
		}
	}
	return def
}

func numberOrNil(n api.FlexNumber) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
