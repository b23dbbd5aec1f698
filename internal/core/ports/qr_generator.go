package ports

// QRCodeGenerator renders a tracking URL as an inline image. The returned
// payload is a data URL that clients can drop straight into an img tag.
type QRCodeGenerator interface {
	DataURL(content string) (string, error)
}
