package responses

type FacultyImport struct {
	TotalRows   int    `json:"total_rows"`
	Upserted    int    `json:"upserted"`
	SkippedRows int    `json:"skipped_rows"`
	ArchiveKey  string `json:"archive_key"`
}
