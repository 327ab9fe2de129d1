// Package textx holds locale-aware string helpers.
package textx

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortFrench sorts ss in place using French collation rules, so accented
// and lower-case values sit next to their plain forms.
func SortFrench(ss []string) {
	// A Collator is not safe for concurrent use.
	collate.New(language.French).SortStrings(ss)
}

// CompareFrench returns -1, 0 or 1 comparing a and b under French collation.
func CompareFrench(a, b string) int {
	return collate.New(language.French).CompareString(a, b)
}
