// Package cli implements the grandboard command line.
//
// Every command opens the application, reloads the catalog from the
// remote store (falling back to the local cache) and then acts on it.
// Commands that change data require the access code, given with --code
// or typed at a hidden prompt.
//
// Commands:
//
//	list        show entries, optionally filtered
//	themes      show the theme values in use
//	save        create or replace an entry
//	delete      remove an entry
//	sync        reload and report pending local changes
//	years       list, add, rename or delete years
//	categories  list, add, rename or delete categories
package cli
