// Package enum provides string conversion, metadata lookup and bit-flag
// helpers for integer-backed enumerations.
//
// Go has no enum reflection, so the variants of a type are declared once in
// a Set together with their human-readable metadata:
//
//	type Status uint8
//
//	const (
//	    Active Status = iota + 1
//	    Suspended
//	    Closed
//	)
//
//	var statuses = enum.New(
//	    enum.Variant[Status]{Value: Active, Name: "Active", Description: "Account is active"},
//	    enum.Variant[Status]{Value: Suspended, Name: "Suspended", DisplayName: "On hold"},
//	    enum.Variant[Status]{Value: Closed, Name: "Closed"},
//	)
//
//	func (s Status) String() string { return statuses.Name(s) }
//
// Parse returns an error (ErrEmptyValue or ErrUnknownName), TryParse reports
// success as a boolean, and ParseOrDefault substitutes a fallback.
//
// Flag types use NewFlags so that "Read, Write" parses to Read|Write, and the
// generic HasFlag, AddFlag, RemoveFlag and ToggleFlag work on any integer
// width without a Set.
package enum
