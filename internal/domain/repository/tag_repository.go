package repository

// TagRepository loads service tags from an external file.
type TagRepository interface {
	LoadTags(filePath string) ([]string, error)
}
