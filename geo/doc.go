// Package geo provides great-circle distance calculation for ranking
// stations around a query coordinate.
package geo
