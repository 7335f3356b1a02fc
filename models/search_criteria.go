package models

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// SearchCriteria is a validated destination search. Guests holds one entry
// per room; it serializes to the upstream's "2|1" pipe format.
type SearchCriteria struct {
	DestinationID string
	CheckIn       string
	CheckOut      string
	Guests        []int
	Currency      string
	CountryCode   string
	Lang          string
	PartnerID     int
}

// ValidationError carries every violated constraint, not just the first, so
// callers can report them all in one response.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "invalid search criteria: " + strings.Join(e.Violations, "; ")
}

// ApplyDefaults fills the optional fields the same way the public search form
// does. Call before Validate.
func (c *SearchCriteria) ApplyDefaults(lang, currency, countryCode string, partnerID int) {
	if c.Lang == "" {
		c.Lang = lang
	}
	if c.Currency == "" {
		c.Currency = currency
	}
	if c.CountryCode == "" {
		c.CountryCode = countryCode
	}
	if c.PartnerID == 0 {
		c.PartnerID = partnerID
	}
}

// Validate checks every constraint and returns a *ValidationError listing all
// violations. Validation is a precondition: no upstream call is made for
// criteria that fail here.
func (c *SearchCriteria) Validate(supportedCurrencies []string) error {
	var violations []string

	if c.DestinationID == "" {
		violations = append(violations, "destination_id is required")
	}

	checkIn, checkInErr := time.Parse(dateLayout, c.CheckIn)
	if checkInErr != nil {
		violations = append(violations, "checkin must be a date in YYYY-MM-DD format")
	}
	checkOut, checkOutErr := time.Parse(dateLayout, c.CheckOut)
	if checkOutErr != nil {
		violations = append(violations, "checkout must be a date in YYYY-MM-DD format")
	}
	if checkInErr == nil && checkOutErr == nil && !checkIn.Before(checkOut) {
		violations = append(violations, "checkin date must be before checkout date")
	}

	if len(c.Guests) == 0 {
		violations = append(violations, "guests is required")
	}
	for _, g := range c.Guests {
		if g < 1 {
			violations = append(violations, "guests must be positive for every room")
			break
		}
	}

	if !currencyPattern.MatchString(c.Currency) || !contains(supportedCurrencies, c.Currency) {
		violations = append(violations, fmt.Sprintf("currency must be one of %s", strings.Join(supportedCurrencies, ", ")))
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

// GuestsParam serializes per-room guest counts into the upstream's
// pipe-delimited form, e.g. [2, 1] -> "2|1".
func (c *SearchCriteria) GuestsParam() string {
	parts := make([]string, len(c.Guests))
	for i, g := range c.Guests {
		parts[i] = strconv.Itoa(g)
	}
	return strings.Join(parts, "|")
}

// QueryValues renders the criteria as the upstream query string.
func (c *SearchCriteria) QueryValues() url.Values {
	q := url.Values{}
	q.Set("destination_id", c.DestinationID)
	q.Set("checkin", c.CheckIn)
	q.Set("checkout", c.CheckOut)
	q.Set("lang", c.Lang)
	q.Set("currency", c.Currency)
	q.Set("country_code", c.CountryCode)
	q.Set("guests", c.GuestsParam())
	q.Set("partner_id", strconv.Itoa(c.PartnerID))
	return q
}

// ParseGuests parses the pipe-delimited guests form ("2" or "2|1") into
// per-room counts. An empty value parses to no rooms; Validate reports the
// omission alongside any other violations. Malformed entries are reported,
// not coerced.
func ParseGuests(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, "|")
	guests := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("guests must be a number or a |-delimited list of numbers")
		}
		guests[i] = n
	}
	return guests, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
