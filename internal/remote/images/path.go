package images

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/dmitrijs2005/grandboard/internal/common"
)

// ObjectPath builds the key for an image of entry id uploaded at t:
// entries/<id>-<unix millis>.<ext>. The extension comes from fileName,
// lower-cased, defaulting to jpg.
func ObjectPath(id, fileName string, t time.Time) string {
	return fmt.Sprintf("%s/%s-%d.%s", common.ImagePrefix, id, t.UnixMilli(), Ext(fileName))
}

// Ext returns the lower-cased extension of name without the dot.
func Ext(name string) string {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	if ext == "" {
		return common.DefaultImageExt
	}
	return strings.ToLower(ext)
}
