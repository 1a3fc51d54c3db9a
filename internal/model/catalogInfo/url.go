package catalogInfo

import (
	"fmt"
	"regexp"
	"strings"
)

const DefaultDistributionBase = "https://d1234.cloudfront.net/catalog"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug lowercases name and collapses each whitespace run into a hyphen.
// Two names with the same slug share a distribution prefix.
func Slug(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// URLBuilder derives distribution URLs below a fixed base.
type URLBuilder struct {
	Base string
}

func NewURLBuilder(base string) URLBuilder {
	if base == "" {
		base = DefaultDistributionBase
	}
	return URLBuilder{Base: strings.TrimRight(base, "/")}
}

func (b URLBuilder) URL(name, filename string) string {
	return fmt.Sprintf("%s/%s/%s", b.Base, Slug(name), filename)
}

// StorageKey is the object key a version's content is stored under. Keys
// follow item and version identity, so renames and repeated filenames never
// move or share content.
func StorageKey(itemID, versionID string) string {
	return itemID + "/" + versionID
}
