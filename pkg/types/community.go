package types

// View models for the community feed. These are the strict shapes the rest of
// the app renders from; raw API payloads never leave the normalizer.

type CommunityPost struct {
	ID            string
	Title         string
	Content       string
	Author        string
	AuthorID      string
	Category      string
	Likes         int
	Comments      int
	Views         int
	CreatedAt     string
	FeaturedImage *string
	IsLiked       bool
}

type CommunityGig struct {
	ID                  string
	Title               string
	Description         string
	GigType             string
	Category            *string
	ExperienceLevel     *string
	Location            *string
	ContactEmail        *string
	ApplicationLink     *string
	ApplicationDeadline *string
	BudgetMin           *float64
	BudgetMax           *float64
	BudgetCurrency      string
	RateType            *string
	IsRemote            bool
	SkillsRequired      []string
	Status              string
	OwnerID             string
	Poster              GigPoster
	Roles               []GigRole
}

type GigPoster struct {
	DisplayName string
	Username    *string
	Avatar      *string
}

type GigRole struct {
	ID            string
	Name          string
	RequiredSlots int // 0 means unlimited
	ApprovedCount int
	PendingCount  int
	Description   *string
}

type GigApplication struct {
	ID       string
	GigID    string
	RoleID   *string
	RoleName *string
	Status   string
}

type CommunityStats struct {
	ActiveCreators int `json:"active_creators"`
	PostsShared    int `json:"posts_shared"`
	Collaborations int `json:"collaborations"`
	EventsHosted   int `json:"events_hosted"`
}

type UserStats struct {
	Posts        int `json:"posts"`
	Gigs         int `json:"gigs"`
	Applications int `json:"applications"`
	Followers    int `json:"followers"`
}

type SessionUser struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatar_url"`
}
