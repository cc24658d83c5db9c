// Package event provides the scraped exhibition record and the heuristic
// field extractors that fill it.
//
// The extractors are independent pure functions over freeform listing text.
// Each tries an ordered sequence of patterns and returns its zero value on a
// miss; none of them ever fail. Date parsing infers the calendar year, since
// the source site never prints one.
package event
