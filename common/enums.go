// Package common keeps enums shared between the document model, engine
// backends and configuration, so neither has to import the others.
package common

// Kind of navigation target a destination points to.
// ENUM(none, scrollTo, launchURL, launchEmbedded, launchFile, djvu, mupdf)
type DestKind int

// IsLaunch reports whether the destination refers to an external resource
// rather than a place inside the current document.
func (k DestKind) IsLaunch() bool {
	return k == DestKindLaunchURL || k == DestKindLaunchEmbedded || k == DestKindLaunchFile
}

// Kind of page element backends may expose.
// ENUM(dest, image, comment)
type ElementKind int

// Purpose of a page rendering request.
// ENUM(view, print, export)
type RenderTarget int

// Document format recognized by the backend registry.
// ENUM(unknown, pdf, cbz, fb2)
type DocFormat int

func (f DocFormat) Ext() string {
	switch f {
	case DocFormatPdf:
		return ".pdf"
	case DocFormatCbz:
		return ".cbz"
	case DocFormatFb2:
		return ".fb2"
	default:
		return ""
	}
}
