package types

type ListingKind string

const (
	ListingKindAsset  ListingKind = "assets"
	ListingKindTalent ListingKind = "talent"
	ListingKindStudio ListingKind = "studios"
	ListingKindTicket ListingKind = "tickets"
)

// Listing is the shared view model behind the asset, talent, studio and
// ticket marketplace grids.
type Listing struct {
	ID         string
	Kind       ListingKind
	Title      string
	Seller     string
	Category   string
	Location   *string
	PriceCents int
	Currency   string
	Tags       []string
	ImageURL   *string
	Rating     *float64
}

type CartSummary struct {
	ItemCount  int `json:"item_count"`
	TotalCents int `json:"total_cents"`
}
