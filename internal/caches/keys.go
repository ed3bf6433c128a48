package caches

import (
	"fmt"
	"strconv"
	"strings"
)

// Cache key prefixes, one per cache class. Classes with per-parameter entries
// (by-id, by-category, popular-N) append the parameter; coarse classes are
// evicted by prefix.
const (
	PrefixProducts    = "products:all"
	PrefixProductByID = "products:id:"
	PrefixCategory    = "products:category:"
	PrefixPopular     = "products:popular:"
	PrefixAnalytics   = "analytics:"
)

func KeyAllProducts() string {
	return PrefixProducts
}

func KeyProductByID(id int64) string {
	return PrefixProductByID + strconv.FormatInt(id, 10)
}

func KeyCategory(category string) string {
	return PrefixCategory + category
}

func KeyPopular(limit int) string {
	return PrefixPopular + strconv.Itoa(limit)
}

// KeyAnalytics builds a key from the operation name and the full parameter
// tuple, e.g. analytics:trending_products:hours=6:limit=10.
func KeyAnalytics(operation string, params ...string) string {
	if len(params) == 0 {
		return PrefixAnalytics + operation
	}
	return PrefixAnalytics + operation + ":" + strings.Join(params, ":")
}

func Param(name string, value int) string {
	return fmt.Sprintf("%s=%d", name, value)
}
