// Package common contains catalog-wide constants and sentinel errors shared
// by the cache, the remote adapter, the taxonomy manager and the reconciler.
package common

// Local cache keys. Each holds one JSON blob.
const (
	EntriesCacheKey         = "grandboard_entries_v2_cache"
	YearsCacheKey           = "grandboard_years_v2"
	ExtraCategoriesCacheKey = "grandboard_extra_categories_v2"
	PendingCacheKey         = "grandboard_pending_v2"
)

// DescriptionMaxLen is the number of characters kept from a description on write.
const DescriptionMaxLen = 200

// ImagePrefix is the object-key prefix for uploaded entry images.
const ImagePrefix = "entries"

// DefaultImageExt is used when an uploaded file name has no extension.
const DefaultImageExt = "jpg"

// Months holds display names, index 0 is January.
var Months = [12]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// BaseCategories can never be renamed or deleted.
var BaseCategories = []string{
	"Podcast", "Documentaire", "Film", "Vidéo", "Exposition", "Livre", "Article",
	"Interview", "Musique", "Image", "Marque", "Personnalité", "Adresse", "Site/application",
}

// MonthName returns the display name for month m (1-12), or "" when out of range.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return Months[m-1]
}

// IsBaseCategory reports whether c is one of BaseCategories.
func IsBaseCategory(c string) bool {
	for _, b := range BaseCategories {
		if b == c {
			return true
		}
	}
	return false
}
