package entity

// Post is a piece of content authored by an account. Writer is a snapshot
// of the account as it was at creation time; it is not re-validated on
// later reads or updates.
type Post struct {
	ID         string
	Content    string
	CreatedAt  int64  // millis, immutable
	ModifiedAt *int64 // millis; nil until the first update
	Writer     *Account
}

// NewPost builds a post for the given writer. The caller is responsible
// for ensuring the writer is ACTIVE at creation time.
func NewPost(content string, writer *Account, createdAtMillis int64) *Post {
	return &Post{
		Content:   content,
		CreatedAt: createdAtMillis,
		Writer:    writer,
	}
}

// UpdateContent overwrites the content and stamps the modification time.
func (p *Post) UpdateContent(content string, modifiedAtMillis int64) {
	p.Content = content
	t := modifiedAtMillis
	p.ModifiedAt = &t
}
