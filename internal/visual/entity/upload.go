package entity

// UploadedFile is one uploaded dataset: the declared name (with extension)
// and its raw content. It is read once by the loader.
type UploadedFile struct {
	Name    string
	Content []byte
}
