package catalog

import (
	"embed"
	"io/fs"
)

//go:generate go run ../../cmd/tonegen -out assets

//go:embed assets/*.wav
var assets embed.FS

// Bundled returns the catalog of tones shipped inside the binary.
func Bundled() *Catalog {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	c, err := New(sub,
		Track{Name: "audio1", Source: "audio1.wav"},
		Track{Name: "audio2", Source: "audio2.wav"},
		Track{Name: "audio3", Source: "audio3.wav"},
	)
	if err != nil {
		panic(err)
	}
	return c
}
