package types

type NavbarData struct {
	IsAuthenticated bool
	UserID          string
	UserName        string
	AvatarURL       string
}

type NavbarDataSetter interface {
	SetNavbarData(data NavbarData)
}

type BasePageData struct {
	Title  string
	Navbar NavbarData
}

func (d *BasePageData) SetNavbarData(data NavbarData) {
	d.Navbar = data
}

type HomePageData struct {
	BasePageData
	Notice string
	Error  string
	Stats  CommunityStats
}

type CommunityPageData struct {
	BasePageData
	Notice        string
	Error         string
	Query         string
	Tab           string
	Posts         []*CommunityPost
	Gigs          []*CommunityGig
	GigCards      []GigCard
	Stats         CommunityStats
	AppliedGigIDs map[string]bool
	Limit         int
	Offset        int
	HasMore       bool
}

// GigCard pairs a gig with its rendered slot labels and selection state.
type GigCard struct {
	Gig          *CommunityGig
	RoleLabels   []RoleSlotLabel
	SelectedRole string
	Applied      bool
}

type RoleSlotLabel struct {
	RoleID    string
	RoleName  string
	Spots     string
	Approvals string
}

type NewPostPageData struct {
	BasePageData
	Error      string
	Categories []string
	Presets    []string
}

type MarketPageData struct {
	BasePageData
	Kind       ListingKind
	Heading    string
	Query      string
	Category   string
	Categories []string
	Listings   []*Listing
	Empty      string
}

type DashboardPageData struct {
	BasePageData
	Stats     CommunityStats
	UserStats UserStats
	Cart      CartSummary
	Leads     []Lead
}

type ProfilePageData struct {
	BasePageData
	UserID    string
	UserStats UserStats
	Posts     []*CommunityPost
	Gigs      []*CommunityGig
}

type LoginPageData struct {
	BasePageData
	Error string
}
