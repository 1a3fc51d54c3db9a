package catalogInfo

// UpdateNotification is emitted when a subscribed item receives a new version.
type UpdateNotification struct {
	ItemID     string `json:"itemId"`
	ItemName   string `json:"itemName"`
	VersionID  string `json:"versionId"`
	Filename   string `json:"filename"`
	UploadDate Date   `json:"uploadDate"`
}
