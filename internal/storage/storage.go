// Package storage holds uploaded result documents and hands back the
// public URLs stored on participant and member records.
package storage

// FileStore uploads a document blob under a display-oriented file name
// and returns a public URL. Every upload gets a fresh URL; callers that
// need replace-on-save semantics dedupe by display name, not by URL.
type FileStore interface {
	Upload(fileName string, data []byte) (url string, err error)
}
