package domain

// Document represents an open editor document.
// The server tracks the full current text of every open .http file;
// the text is replaced wholesale on each change notification
// (whole-document sync, no incremental patching) and no history is kept.
type Document struct {
	// URI is the document identifier as sent by the editor.
	URI string

	// Text is the complete current content.
	Text string

	// Version is the editor's version number for the content,
	// recorded for logging only.
	Version int32
}
