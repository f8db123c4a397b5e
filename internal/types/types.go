// Package types holds the data structures shared between the API server,
// the web app, and the TypeScript mirror emitted by cmd/typegen. Keeping
// them in one place means there is exactly one definition of the wire
// shape for every consumer.
package types

// Person is the single domain record this starter serves.
//
// FavouriteFood is a pointer so that an absent value serialises to JSON
// null rather than an empty string; the generated TypeScript mirror
// declares the same field as `string | null`.
type Person struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	FavouriteFood *string `json:"favourite_food"`
}
