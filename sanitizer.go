package readview

// Sanitizer filters HTML down to an explicit allow-list of tags and
// attributes. It is the single mandatory choke point between extracted
// or processed HTML and anything rendered to a user, and must run on
// the final post-segmentation content since segmentation injects new
// markup.
type Sanitizer interface {
	Sanitize(html string) (string, error)
}
