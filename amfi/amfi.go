// Package amfi fetches the AMFI mutual fund registry and per-scheme NAV
// histories from the public mfapi.in API.
package amfi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/atharva/siptrack"
	"github.com/atharva/siptrack/date"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public mfapi.in endpoint.
const DefaultBaseURL = "https://api.mfapi.in"

// Client accesses the mfapi.in API. The zero value is not usable; use New.
// It implements siptrack.Provider.
type Client struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string
	// Client is used for NAV history requests. The catalog endpoint uses
	// its own daily-cached client, see daily().
	Client *http.Client
}

// New returns a Client for the public API.
func New() *Client {
	return &Client{BaseURL: DefaultBaseURL, Client: new(http.Client)}
}

// Catalog returns the full scheme registry: every scheme code with its
// official name.
//
//	[
//	  {
//	    "schemeCode": 119598,
//	    "schemeName": "SBI Bluechip Fund - Direct Plan - Growth"
//	  },
//
// The registry weighs tens of thousands of entries and changes at most
// daily, so this endpoint is queried at most once a day.
func (c *Client) Catalog() (siptrack.Catalog, error) {
	addr := c.BaseURL + "/mf"

	type info struct {
		SchemeCode int    `json:"schemeCode"`
		SchemeName string `json:"schemeName"`
	}
	content := make([]info, 0)
	if err := jwget(c.dailyClient(), addr, &content); err != nil {
		return nil, fmt.Errorf("amfi cannot fetch the scheme registry: %w", err)
	}

	catalog := make(siptrack.Catalog, 0, len(content))
	for _, s := range content {
		catalog = append(catalog, siptrack.Scheme{Code: strconv.Itoa(s.SchemeCode), Name: s.SchemeName})
	}
	return catalog, nil
}

// HistoricalNAV returns the full published NAV history for a scheme code.
//
//	{
//	  "meta": { "scheme_code": 119598, ... },
//	  "data": [
//	    { "date": "03-06-2024", "nav": "81.38550" },
//	    { "date": "31-05-2024", "nav": "81.23660" },
//	  "status": "SUCCESS"
//	}
//
// The feed lists points newest first with dd-mm-yyyy dates; the returned
// history is ascending. An unknown code comes back with an empty data
// list, which is reported as an error.
func (c *Client) HistoricalNAV(code string) (prices date.History[decimal.Decimal], err error) {
	addr := c.BaseURL + "/mf/" + url.PathEscape(code)

	type point struct {
		Date string `json:"date"`
		NAV  string `json:"nav"`
	}
	var content struct {
		Data   []point `json:"data"`
		Status string  `json:"status"`
	}
	if err := jwget(c.Client, addr, &content); err != nil {
		return prices, fmt.Errorf("amfi cannot fetch NAV history for %s: %w", code, err)
	}
	if len(content.Data) == 0 {
		return prices, fmt.Errorf("amfi has no NAV history for scheme %s (status %q)", code, content.Status)
	}

	for _, p := range content.Data {
		on, err := date.ParseDMY(p.Date)
		if err != nil {
			return prices, fmt.Errorf("amfi NAV history for %s has an invalid date %q: %w", code, p.Date, err)
		}
		nav, err := decimal.NewFromString(p.NAV)
		if err != nil {
			return prices, fmt.Errorf("amfi NAV history for %s has an invalid nav %q: %w", code, p.NAV, err)
		}
		prices.Append(on, nav)
	}
	return prices, nil
}

// dailyClient returns the client used for the catalog endpoint: the
// configured transport wrapped in the daily disk cache.
func (c *Client) dailyClient() *http.Client {
	client := daily()
	if c.Client != nil && c.Client.Transport != nil {
		client.Transport = &diskCache{c.Client.Transport}
	}
	return client
}
