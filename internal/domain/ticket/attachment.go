package ticket

// Attachment describes a file attached to a ticket or comment.
// Only metadata is tracked here; the file itself lives in the upload directory.
type Attachment struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Mimetype string `json:"mimetype"`
	Size     int64  `json:"size"`
}
