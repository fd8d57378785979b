package ereft

import (
	"fmt"
	"strconv"
	"strings"
)

// Decimal is a numeric amount that decodes from either a JSON number or a
// quoted string. The backend serializes its decimal columns as strings
// ("1500000.00"), so a plain float64 field would reject every real payload.
type Decimal float64

// UnmarshalJSON accepts 1500000, "1500000.00", null, and "".
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("parse decimal %s: %w", s, err)
		}
		s = strings.TrimSpace(unquoted)
	}
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse decimal %q: %w", s, err)
	}
	*d = Decimal(v)
	return nil
}

// Owner identifies the account that created a listing.
type Owner struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// DisplayName prefers the first name and falls back to the username.
func (o Owner) DisplayName() string {
	if name := strings.TrimSpace(o.FirstName); name != "" {
		return name
	}
	return o.Username
}

// PropertyImage is one entry of a listing's ordered image set.
type PropertyImage struct {
	ID        int64  `json:"id"`
	Image     string `json:"image"`
	Caption   string `json:"caption"`
	IsPrimary bool   `json:"is_primary"`
	Order     int    `json:"order"`
}

// Property mirrors the payload returned by /api/listings/properties/{id}/.
// Optional numeric attributes are pointers so "absent" and "zero" stay
// distinguishable.
type Property struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	PropertyType string   `json:"property_type"`
	ListingType  string   `json:"listing_type"`
	Price        Decimal  `json:"price"`
	PricePerSqm  *Decimal `json:"price_per_sqm"`

	Address string `json:"address"`
	City    string `json:"city"`
	SubCity string `json:"sub_city"`

	Bedrooms  *int     `json:"bedrooms"`
	Bathrooms *Decimal `json:"bathrooms"`
	AreaSqm   *int     `json:"area_sqm"`
	YearBuilt *int     `json:"year_built"`

	HasGarage          bool `json:"has_garage"`
	HasPool            bool `json:"has_pool"`
	HasGarden          bool `json:"has_garden"`
	HasBalcony         bool `json:"has_balcony"`
	IsFurnished        bool `json:"is_furnished"`
	HasAirConditioning bool `json:"has_air_conditioning"`
	HasHeating         bool `json:"has_heating"`

	Status     string `json:"status"`
	IsFeatured bool   `json:"is_featured"`
	ViewsCount int    `json:"views_count"`

	Images      []PropertyImage `json:"images"`
	Owner       *Owner          `json:"owner"`
	IsFavorited bool            `json:"is_favorited"`
}

// Validate rejects records that are missing the fields every listing must
// carry. It runs at the fetch boundary so a malformed body surfaces as a
// decode failure instead of propagating empty fields into the UI.
func (p *Property) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("listing record missing id")
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("listing record %s missing title", p.ID)
	}
	return nil
}

// Location renders the address line the way the listing page shows it.
func (p *Property) Location() string {
	parts := []string{p.Address, p.City}
	if strings.TrimSpace(p.SubCity) != "" {
		parts = append(parts, p.SubCity)
	}
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return strings.Join(out, ", ")
}

// Features lists the enabled feature flags in display order.
func (p *Property) Features() []string {
	var features []string
	for _, f := range []struct {
		on    bool
		label string
	}{
		{p.HasGarage, "Garage"},
		{p.HasPool, "Pool"},
		{p.HasGarden, "Garden"},
		{p.HasBalcony, "Balcony"},
		{p.IsFurnished, "Furnished"},
		{p.HasAirConditioning, "Air Conditioning"},
		{p.HasHeating, "Heating"},
	} {
		if f.on {
			features = append(features, f.label)
		}
	}
	return features
}

// PropertyPage mirrors the paginated /api/listings/properties/ payload.
type PropertyPage struct {
	Count    int        `json:"count"`
	Next     *string    `json:"next"`
	Previous *string    `json:"previous"`
	Results  []Property `json:"results"`
}

// HasNext reports whether another page follows this one.
func (p *PropertyPage) HasNext() bool { return p.Next != nil }
