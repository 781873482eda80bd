// Package entity holds the domain types shared by the store, the report
// engine and the REST layer.
package entity

import "github.com/shopspring/decimal"

func init() {
	// Money travels as JSON numbers, matching the dashboard client.
	decimal.MarshalJSONWithoutQuotes = true
}
