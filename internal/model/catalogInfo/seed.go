package catalogInfo

func date(s string) *Date {
	d := Date(s)
	return &d
}

// SeedItems returns the demo catalog the service starts with when no
// persisted state exists.
func SeedItems(urls URLBuilder) []Item {
	items := []Item{
		{
			ID:             "1",
			Name:           "Q4 Revenue Report",
			LastUpdated:    "2026-02-15",
			Visibility:     VisibilityAll,
			RestrictedTo:   []string{},
			Subscribed:     true,
			LastDownloaded: date("2026-01-20"),
			CurrentVersion: "v3",
			Versions: []Version{
				{ID: "1-v1", Filename: "q4_revenue_v1.xlsx", UploadDate: "2025-11-01", FileSize: "2.4 MB"},
				{ID: "1-v2", Filename: "q4_revenue_v2.xlsx", UploadDate: "2026-01-10", FileSize: "2.6 MB"},
				{ID: "1-v3", Filename: "q4_revenue_v3.xlsx", UploadDate: "2026-02-15", FileSize: "2.8 MB", IsCurrent: true},
			},
		},
		{
			ID:             "2",
			Name:           "Customer Segmentation Data",
			LastUpdated:    "2026-02-20",
			Visibility:     VisibilityAll,
			RestrictedTo:   []string{},
			Subscribed:     true,
			LastDownloaded: date("2026-02-01"),
			CurrentVersion: "v2",
			Versions: []Version{
				{ID: "2-v1", Filename: "segmentation_v1.csv", UploadDate: "2025-12-15", FileSize: "15.1 MB"},
				{ID: "2-v2", Filename: "segmentation_v2.csv", UploadDate: "2026-02-20", FileSize: "16.3 MB", IsCurrent: true},
			},
		},
		{
			ID:             "3",
			Name:           "Monthly KPI Dashboard Export",
			LastUpdated:    "2026-02-25",
			Visibility:     VisibilityAll,
			RestrictedTo:   []string{},
			LastDownloaded: date("2026-02-25"),
			CurrentVersion: "v1",
			Versions: []Version{
				{ID: "3-v1", Filename: "kpi_export_feb2026.xlsx", UploadDate: "2026-02-25", FileSize: "1.1 MB", IsCurrent: true},
			},
		},
		{
			ID:             "4",
			Name:           "Compliance Audit Trail",
			LastUpdated:    "2026-01-30",
			Visibility:     VisibilityRestricted,
			RestrictedTo:   []string{"jsmith", "analyst2"},
			Subscribed:     true,
			CurrentVersion: "v2",
			Versions: []Version{
				{ID: "4-v1", Filename: "audit_trail_v1.pdf", UploadDate: "2025-10-15", FileSize: "4.2 MB"},
				{ID: "4-v2", Filename: "audit_trail_v2.pdf", UploadDate: "2026-01-30", FileSize: "4.8 MB", IsCurrent: true},
			},
		},
		{
			ID:             "5",
			Name:           "Vendor Performance Metrics",
			LastUpdated:    "2026-02-10",
			Visibility:     VisibilityRestricted,
			RestrictedTo:   []string{"mwilson"},
			LastDownloaded: date("2026-02-10"),
			CurrentVersion: "v1",
			Versions: []Version{
				{ID: "5-v1", Filename: "vendor_metrics_q4.xlsx", UploadDate: "2026-02-10", FileSize: "3.7 MB", IsCurrent: true},
			},
		},
	}
	for i := range items {
		if cur, _, ok := items[i].Current(); ok {
			items[i].DistributionURL = urls.URL(items[i].Name, cur.Filename)
		}
	}
	return items
}
