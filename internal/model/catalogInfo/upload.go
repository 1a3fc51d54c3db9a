package catalogInfo

import (
	"fmt"
	"strings"
)

// FileUpload describes an uploaded file. A zero value means no file was
// attached and a placeholder filename is generated.
type FileUpload struct {
	Name        string
	Size        int64
	ContentType string
}

func (f FileUpload) Attached() bool {
	return f.Name != ""
}

// FormatSize renders a byte count the way the catalog lists it.
func FormatSize(size int64) string {
	if size <= 0 {
		return "0 MB"
	}
	return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
}

func placeholderFilename(itemName string, ordinal int) string {
	base := whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(itemName)), "_")
	return fmt.Sprintf("%s_v%d", base, ordinal)
}

// uniquePlaceholder picks the first free "<name>_v<n>" at or above ordinal.
func uniquePlaceholder(itemName string, ordinal int, versions []Version) string {
	for {
		name := placeholderFilename(itemName, ordinal)
		taken := false
		for _, v := range versions {
			if v.Filename == name {
				taken = true
				break
			}
		}
		if !taken {
			return name
		}
		ordinal++
	}
}

func newVersion(id string, file FileUpload, itemName string, ordinal int, existing []Version, today Date) Version {
	filename := file.Name
	if !file.Attached() {
		filename = uniquePlaceholder(itemName, ordinal, existing)
	}
	return Version{
		ID:         id,
		Filename:   filename,
		UploadDate: today,
		FileSize:   FormatSize(file.Size),
	}
}
