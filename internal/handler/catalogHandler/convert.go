package catalogHandler

import (
	"bytes"
	"io"

	catalogproto "file-catalog/api/catalogproto/proto-generate"
	"file-catalog/internal/model/catalogInfo"
	"file-catalog/internal/model/user"
)

func versionToProto(v catalogInfo.Version) *catalogproto.Version {
	return &catalogproto.Version{
		Id:         v.ID,
		Filename:   v.Filename,
		UploadDate: string(v.UploadDate),
		FileSize:   v.FileSize,
		IsCurrent:  v.IsCurrent,
	}
}

func itemToProto(it catalogInfo.Item) *catalogproto.Item {
	out := &catalogproto.Item{
		Id:              it.ID,
		Name:            it.Name,
		LastUpdated:     string(it.LastUpdated),
		Visibility:      string(it.Visibility),
		RestrictedTo:    it.RestrictedTo,
		Subscribed:      it.Subscribed,
		CurrentVersion:  it.CurrentVersion,
		Versions:        make([]*catalogproto.Version, 0, len(it.Versions)),
		DistributionUrl: it.DistributionURL,
	}
	if it.LastDownloaded != nil {
		out.LastDownloaded = string(*it.LastDownloaded)
	}
	for _, v := range it.Versions {
		out.Versions = append(out.Versions, versionToProto(v))
	}
	return out
}

func itemsToProto(items []catalogInfo.Item) []*catalogproto.Item {
	out := make([]*catalogproto.Item, 0, len(items))
	for _, it := range items {
		out = append(out, itemToProto(it))
	}
	return out
}

func usersToProto(users []user.User) []*catalogproto.User {
	out := make([]*catalogproto.User, 0, len(users))
	for _, u := range users {
		out = append(out, &catalogproto.User{Id: u.ID, Name: u.Name, Email: u.Email})
	}
	return out
}

// upload turns a wire upload into the domain form. Empty content means a
// placeholder version with nothing to store.
func upload(u *catalogproto.Upload) (catalogInfo.FileUpload, io.Reader) {
	file := catalogInfo.FileUpload{
		Name:        u.GetFilename(),
		Size:        u.GetSize(),
		ContentType: u.GetContentType(),
	}
	if len(u.GetContent()) == 0 {
		return file, nil
	}
	if file.Size == 0 {
		file.Size = int64(len(u.GetContent()))
	}
	return file, bytes.NewReader(u.GetContent())
}
