package community

import (
	"strings"

	"callboard/pkg/types"
)

// Free-text filtering. Each entity contributes a haystack of its raw-ish
// fields joined with single spaces; matching is one case-insensitive
// substring test. No tokenization, no ranking.

// PostHaystack joins the searchable fields of a post. Empty fields are
// omitted entirely rather than contributing empty strings, so no accidental
// substrings form across field boundaries.
func PostHaystack(post *types.CommunityPost) string {
	return joinFields(
		post.Title,
		post.Content,
		post.Author,
		post.Category,
	)
}

// GigHaystack joins the searchable fields of a gig, including joined skills
// and role names. Derived display labels (slot counts, budget strings) are
// deliberately not part of the haystack.
func GigHaystack(gig *types.CommunityGig) string {
	fields := []string{
		gig.Title,
		gig.Description,
		gig.GigType,
		strOr(gig.Category, ""),
		strOr(gig.ExperienceLevel, ""),
		strOr(gig.Location, ""),
		gig.Poster.DisplayName,
		strOr(gig.Poster.Username, ""),
		strings.Join(gig.SkillsRequired, " "),
	}
	for _, role := range gig.Roles {
		fields = append(fields, role.Name)
	}
	return joinFields(fields...)
}

// FilterPosts returns the posts whose haystack contains the query. A blank
// query returns the input slice itself, untouched.
func FilterPosts(posts []*types.CommunityPost, query string) []*types.CommunityPost {
	needle, ok := normalizeQuery(query)
	if !ok {
		return posts
	}

	matched := make([]*types.CommunityPost, 0, len(posts))
	for _, post := range posts {
		if strings.Contains(strings.ToLower(PostHaystack(post)), needle) {
			matched = append(matched, post)
		}
	}
	return matched
}

// FilterGigs returns the gigs whose haystack contains the query. A blank
// query returns the input slice itself, untouched.
func FilterGigs(gigs []*types.CommunityGig, query string) []*types.CommunityGig {
	needle, ok := normalizeQuery(query)
	if !ok {
		return gigs
	}

	matched := make([]*types.CommunityGig, 0, len(gigs))
	for _, gig := range gigs {
		if strings.Contains(strings.ToLower(GigHaystack(gig)), needle) {
			matched = append(matched, gig)
		}
	}
	return matched
}

func normalizeQuery(query string) (string, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", false
	}
	return strings.ToLower(trimmed), true
}

func joinFields(fields ...string) string {
	nonEmpty := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			nonEmpty = append(nonEmpty, f)
		}
	}
	return strings.Join(nonEmpty, " ")
}
