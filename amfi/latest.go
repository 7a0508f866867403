package amfi

import (
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

/*
	{
	    "meta": {
	        "fund_house": "SBI Mutual Fund",
	        "scheme_code": 119598,
	        "scheme_name": "SBI Bluechip Fund - Direct Plan - Growth"
	    },
	    "data": [
	        {
	            "date": "03-06-2024",
	            "nav": "81.38550"
	        }
	    ],
	    "status": "SUCCESS"
	}
*/

// LatestNAV returns the most recently published NAV for a scheme code,
// using the lightweight latest endpoint instead of the full history.
func (c *Client) LatestNAV(code string) (decimal.Decimal, error) {
	addr := c.BaseURL + "/mf/" + url.PathEscape(code) + "/latest"

	var jobj any
	if err := jwget(c.Client, addr, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("amfi cannot fetch the latest NAV for %s: %w", code, err)
	}
	path := "$.data[0].nav"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amfi latest NAV for %s: %q %w", code, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	// The feed publishes NAVs as strings.
	sval, ok := jval.(string)
	if !ok {
		return decimal.Zero, fmt.Errorf("amfi latest NAV for %s: %q is not a string: %v", code, path, jval)
	}
	nav, err := decimal.NewFromString(sval)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amfi latest NAV for %s is an invalid number %q: %w", code, sval, err)
	}
	return nav, nil
}
