// Command tonegen writes the tones bundled with cassette.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func main() {
	out := flag.String("out", "internal/catalog/assets", "output directory")
	flag.Parse()

	if err := run(*out); err != nil {
		log.Fatal(err)
	}
}

func run(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, t := range tones {
		if err := writeFile(filepath.Join(dir, t.File), t); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%.2f Hz, %s)\n", t.File, t.Freq, t.Length)
	}
	return nil
}

func writeFile(path string, t Tone) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
