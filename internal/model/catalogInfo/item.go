package catalogInfo

import (
	"errors"
	"time"
)

var (
	ErrItemNotFound      = errors.New("catalog item not found")
	ErrVersionNotFound   = errors.New("version not found")
	ErrInvalidName       = errors.New("item name must not be empty")
	ErrInvalidVisibility = errors.New("visibility must be \"all\" or \"restricted\"")
)

type Visibility string

const (
	VisibilityAll        Visibility = "all"
	VisibilityRestricted Visibility = "restricted"
)

func (v Visibility) Valid() bool {
	return v == VisibilityAll || v == VisibilityRestricted
}

// Date is a calendar day in YYYY-MM-DD form. Dates order lexicographically.
type Date string

const dateLayout = "2006-01-02"

func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func (d Date) Time() (time.Time, error) {
	return time.Parse(dateLayout, string(d))
}

type Version struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	UploadDate Date   `json:"uploadDate"`
	FileSize   string `json:"fileSize"`
	IsCurrent  bool   `json:"isCurrent"`
}

type Item struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	LastUpdated     Date       `json:"lastUpdated"`
	Visibility      Visibility `json:"visibility"`
	RestrictedTo    []string   `json:"restrictedTo"`
	Subscribed      bool       `json:"subscribed"`
	LastDownloaded  *Date      `json:"lastDownloaded"`
	CurrentVersion  string     `json:"currentVersion"`
	Versions        []Version  `json:"versions"`
	DistributionURL string     `json:"distributionUrl"`
}

// Clone returns a deep copy; snapshots hand out clones so callers cannot
// mutate shared state.
func (it Item) Clone() Item {
	out := it
	out.RestrictedTo = append([]string{}, it.RestrictedTo...)
	out.Versions = append([]Version{}, it.Versions...)
	if it.LastDownloaded != nil {
		d := *it.LastDownloaded
		out.LastDownloaded = &d
	}
	return out
}

// Current returns the version flagged current and its position.
func (it Item) Current() (Version, int, bool) {
	for i, v := range it.Versions {
		if v.IsCurrent {
			return v, i, true
		}
	}
	return Version{}, -1, false
}

func (it Item) VersionIndex(versionID string) int {
	for i, v := range it.Versions {
		if v.ID == versionID {
			return i
		}
	}
	return -1
}

// HasUpdate reports whether the item changed since it was last downloaded.
func (it Item) HasUpdate() bool {
	if it.LastDownloaded == nil {
		return true
	}
	return it.LastUpdated > *it.LastDownloaded
}

// VisibleTo reports whether a non-admin user may see the item.
func (it Item) VisibleTo(userID string) bool {
	if it.Visibility != VisibilityRestricted {
		return true
	}
	for _, u := range it.RestrictedTo {
		if u == userID {
			return true
		}
	}
	return false
}
