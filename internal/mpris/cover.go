//go:build linux

package mpris

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

var (
	coverStems = []string{"cover", "folder", "album", "front"}
	coverExts  = []string{".jpg", ".jpeg", ".png"}
)

// artURL returns a file URL for the picture that goes with source in the
// music directory dir, or "" if there is none. An image named after the
// track wins over a directory-wide cover.
func artURL(dir, source string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	images := make(map[string]string, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		images[strings.ToLower(e.Name())] = e.Name()
	}

	stems := append([]string{strings.TrimSuffix(source, filepath.Ext(source))}, coverStems...)
	for _, stem := range stems {
		for _, ext := range coverExts {
			if name, ok := images[strings.ToLower(stem+ext)]; ok {
				u := url.URL{Scheme: "file", Path: filepath.Join(dir, name)}
				return u.String()
			}
		}
	}
	return ""
}
