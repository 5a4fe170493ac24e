package server

import (
	"net/http"

	"callboard/internal/market"
	"callboard/pkg/types"
)

var marketPages = map[types.ListingKind]struct {
	Heading string
	Empty   string
}{
	types.ListingKindAsset:  {Heading: "Asset Marketplace", Empty: "No assets listed yet"},
	types.ListingKindTalent: {Heading: "Talent Directory", Empty: "No talent profiles yet"},
	types.ListingKindStudio: {Heading: "Studio Spaces", Empty: "No studios listed yet"},
	types.ListingKindTicket: {Heading: "Event Tickets", Empty: "No tickets on sale yet"},
}

type marketQuery struct {
	Query    string `form:"q"`
	Category string `form:"category"`
}

func (s *Service) handleMarket(w http.ResponseWriter, r *http.Request) {
	kind := types.ListingKind(flowParam(r, "kind"))
	page, ok := marketPages[kind]
	if !ok {
		http.NotFound(w, r)
		return
	}

	var params marketQuery
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		s.logger.WithError(err).Debug("bad market query")
	}

	client := s.client.WithSession(sessionFromContext(r.Context()).Provider())

	// Read failures degrade to an empty grid, never an error page.
	raw, err := client.Listings(r.Context(), kind)
	if err != nil {
		s.logger.WithError(err).WithField("kind", kind).Warn("failed to fetch listings")
		raw = nil
	}

	listings := market.NormalizeAll(raw, kind)

	data := &types.MarketPageData{
		BasePageData: types.BasePageData{Title: page.Heading},
		Kind:         kind,
		Heading:      page.Heading,
		Query:        params.Query,
		Category:     params.Category,
		Categories:   market.Categories(listings),
		Listings:     market.Filter(listings, params.Query, params.Category),
		Empty:        page.Empty,
	}

	if err := s.renderTemplate(w, r, "page.market", data); err != nil {
		s.logger.WithError(err).Error("failed to render market page")
		s.internalServerError(w)
	}
}
