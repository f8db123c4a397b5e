// Package people provides the demo dataset served by the API.
package people

import "github.com/seanharvey/people-starter/internal/types"

// List returns the fixed three-person demo list. The slice is rebuilt on
// every call, so no state is shared between requests and callers may
// mutate the result freely.
func List() []types.Person {
	pizza := "Pizza"
	broccoli := "Broccoli"

	return []types.Person{
		{Name: "Person A", Age: 36, FavouriteFood: &pizza},
		{Name: "Person B", Age: 5, FavouriteFood: &broccoli},
		{Name: "Person C", Age: 100, FavouriteFood: nil},
	}
}
