// Package catalog provides the book identifier grammar and the in-memory
// inventory store for the shelf library catalog.
//
// # Identifiers
//
// A book identifier is a two-character hex prefix, a dash, and a non-negative
// integer, for example "ab-12". Parsing functions return either a canonical
// value or a *ValidationError describing what was wrong:
//
//	id, err := catalog.ParseBookID(" AB-007 ")
//	// id == "ab-7", err == nil
//
// Parsed values are always normalised (lower case, no leading zeros), so a
// value of type BookID can be stored without further cleaning.
//
// # Inventory
//
// An Inventory holds the ordered list of books and the set of checked-out
// identifiers. It is constructed explicitly with NewInventory and flushes its
// full State through a Saver after every mutation:
//
//	inv := catalog.NewInventory(state, store)
//	if err := inv.Add(ctx, book); err != nil { ... }
//
// The inventory itself applies no business guards: CheckoutByID and ReturnByID
// are unconditional and idempotent. Guards such as "already checked out" live
// in the circulation service built on top of it.
package catalog
