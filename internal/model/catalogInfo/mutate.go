package catalogInfo

import (
	"fmt"
	"strings"
)

// The functions below never modify their input: each works on a clone and
// returns the next state of the item.

// NewItem builds a catalog item with a single, current version.
func NewItem(id, versionID, name string, vis Visibility, users []string, file FileUpload, today Date, urls URLBuilder) (Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Item{}, ErrInvalidName
	}
	if !vis.Valid() {
		return Item{}, ErrInvalidVisibility
	}
	v := newVersion(versionID, file, name, 1, nil, today)
	v.IsCurrent = true
	restricted := []string{}
	if vis == VisibilityRestricted {
		restricted = NormalizeUsers(users)
	}
	return Item{
		ID:              id,
		Name:            name,
		LastUpdated:     today,
		Visibility:      vis,
		RestrictedTo:    restricted,
		CurrentVersion:  "v1",
		Versions:        []Version{v},
		DistributionURL: urls.URL(name, v.Filename),
	}, nil
}

// Rename reports false when the trimmed name equals the current one.
func Rename(it Item, name string, urls URLBuilder) (Item, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return it, false, ErrInvalidName
	}
	if name == it.Name {
		return it, false, nil
	}
	out := it.Clone()
	out.Name = name
	if cur, _, ok := out.Current(); ok {
		out.DistributionURL = urls.URL(name, cur.Filename)
	}
	return out, true, nil
}

func SetVisibility(it Item, vis Visibility, users []string) (Item, error) {
	if !vis.Valid() {
		return it, ErrInvalidVisibility
	}
	out := it.Clone()
	out.Visibility = vis
	if vis == VisibilityAll {
		out.RestrictedTo = []string{}
	} else {
		out.RestrictedTo = NormalizeUsers(users)
	}
	return out, nil
}

func SetSubscribed(it Item, subscribed bool) Item {
	out := it.Clone()
	out.Subscribed = subscribed
	return out
}

func RecordDownload(it Item, today Date) Item {
	out := it.Clone()
	out.LastDownloaded = &today
	return out
}

// AddVersion appends a non-current version and bumps LastUpdated. The
// current version and distribution URL stay as they are.
func AddVersion(it Item, versionID string, file FileUpload, today Date) (Item, Version) {
	out := it.Clone()
	v := newVersion(versionID, file, it.Name, len(it.Versions)+1, it.Versions, today)
	out.Versions = append(out.Versions, v)
	out.LastUpdated = v.UploadDate
	return out, v
}

func SetCurrentVersion(it Item, versionID string, urls URLBuilder) (Item, error) {
	idx := it.VersionIndex(versionID)
	if idx < 0 {
		return it, fmt.Errorf("item %s: %w", it.ID, ErrVersionNotFound)
	}
	out := it.Clone()
	for i := range out.Versions {
		out.Versions[i].IsCurrent = i == idx
	}
	out.CurrentVersion = fmt.Sprintf("v%d", idx+1)
	out.DistributionURL = urls.URL(out.Name, out.Versions[idx].Filename)
	return out, nil
}

// DeleteVersion removes a version. Deleting the current version leaves the
// item without one; CurrentVersion and DistributionURL keep their old values.
func DeleteVersion(it Item, versionID string) (Item, Version, error) {
	idx := it.VersionIndex(versionID)
	if idx < 0 {
		return it, Version{}, fmt.Errorf("item %s: %w", it.ID, ErrVersionNotFound)
	}
	removed := it.Versions[idx]
	out := it.Clone()
	out.Versions = append(out.Versions[:idx], out.Versions[idx+1:]...)
	return out, removed, nil
}

// NormalizeUsers trims user ids and drops blanks and duplicates, keeping
// first-seen order.
func NormalizeUsers(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
