package api

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Raw record types mirror the backend payloads as loosely as they arrive:
// every field optional, ids sometimes numeric, counts sometimes strings,
// skills either an array or one comma-separated string. Nothing downstream of
// the normalizer sees these shapes.

// FlexID accepts a JSON string or number and holds it as a string so map and
// set keys stay stable regardless of what the backend sent.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = FlexID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string { return string(f) }

// FlexNumber accepts a JSON number, a numeric string, or null. Valid is false
// for anything that does not parse to a finite number, which lets fallback
// chains fall through to the next candidate.
type FlexNumber struct {
	Value float64
	Valid bool
}

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	f.Value, f.Valid = 0, false
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		s = strings.TrimSpace(v)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	f.Value, f.Valid = v, true
	return nil
}

// StringList accepts either a JSON array of strings or a single
// comma-separated string. Items are kept verbatim; trimming and dedup happen
// in the normalizer.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*l = nil
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	if joined == "" {
		*l = nil
		return nil
	}
	*l = strings.Split(joined, ",")
	return nil
}

type RawPost struct {
	ID            FlexID     `json:"id"`
	UserID        FlexID     `json:"user_id"`
	Title         *string    `json:"title"`
	Content       *string    `json:"content"`
	Author        *string    `json:"author"`
	Username      *string    `json:"username"`
	Category      *string    `json:"category"`
	Likes         FlexNumber `json:"likes"`
	Comments      FlexNumber `json:"comments"`
	Views         FlexNumber `json:"views"`
	CreatedAt     *string    `json:"created_at"`
	FeaturedImage *string    `json:"featured_image"`
	IsLiked       *bool      `json:"is_liked"`
}

type RawGig struct {
	ID                  FlexID     `json:"id"`
	UserID              FlexID     `json:"user_id"`
	Title               *string    `json:"title"`
	Description         *string    `json:"description"`
	GigType             *string    `json:"gig_type"`
	Category            *string    `json:"category"`
	ExperienceLevel     *string    `json:"experience_level"`
	Location            *string    `json:"location"`
	ContactEmail        *string    `json:"contact_email"`
	ApplicationLink     *string    `json:"application_link"`
	ApplicationDeadline *string    `json:"application_deadline"`
	BudgetMin           FlexNumber `json:"budget_min"`
	BudgetMax           FlexNumber `json:"budget_max"`
	BudgetCurrency      *string    `json:"budget_currency"`
	RateType            *string    `json:"rate_type"`
	IsRemote            *bool      `json:"is_remote"`
	SkillsRequired      StringList `json:"skills_required"`
	Status              *string    `json:"status"`
	DisplayName         *string    `json:"display_name"`
	Username            *string    `json:"username"`
	Avatar              *string    `json:"avatar"`
	Roles               []RawRole  `json:"roles"`
}

type RawRole struct {
	ID                 FlexID     `json:"id"`
	Name               *string    `json:"name"`
	RequiredSlots      FlexNumber `json:"requiredSlots"`
	RequiredSlotsSnake FlexNumber `json:"required_slots"`
	ApprovedCount      FlexNumber `json:"approvedCount"`
	ApprovedCountSnake FlexNumber `json:"approved_count"`
	PendingCount       FlexNumber `json:"pendingCount"`
	PendingCountSnake  FlexNumber `json:"pending_count"`
	Description        *string    `json:"description"`
}

type RawApplication struct {
	ID       FlexID  `json:"id"`
	GigID    FlexID  `json:"gig_id"`
	RoleID   *FlexID `json:"role_id"`
	RoleName *string `json:"role_name"`
	Status   *string `json:"status"`
}

type RawListing struct {
	ID         FlexID     `json:"id"`
	Title      *string    `json:"title"`
	Seller     *string    `json:"seller"`
	SellerName *string    `json:"seller_name"`
	Username   *string    `json:"username"`
	Category   *string    `json:"category"`
	Location   *string    `json:"location"`
	PriceCents FlexNumber `json:"price_cents"`
	Price      FlexNumber `json:"price"`
	Currency   *string    `json:"currency"`
	Tags       StringList `json:"tags"`
	ImageURL   *string    `json:"image_url"`
	Rating     FlexNumber `json:"rating"`
}
