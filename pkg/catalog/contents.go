package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"screentimeicons/pkg/icon"
)

// Image is one entry in the appiconset manifest.
type Image struct {
	Size     string `json:"size"`
	Idiom    string `json:"idiom"`
	Filename string `json:"filename"`
	Scale    string `json:"scale"`
}

type Info struct {
	Version int    `json:"version"`
	Author  string `json:"author"`
}

// Contents is the manifest Xcode reads from an .appiconset directory to
// map device contexts onto icon files.
type Contents struct {
	Images []Image `json:"images"`
	Info   Info    `json:"info"`
}

// FromSpecs builds the manifest for the given icon set.
func FromSpecs(specs []icon.Spec) Contents {
	c := Contents{
		Images: make([]Image, 0, len(specs)),
		Info:   Info{Version: 1, Author: "xcode"},
	}
	for _, s := range specs {
		c.Images = append(c.Images, Image{
			Size:     s.SizeLabel(),
			Idiom:    s.Idiom,
			Filename: s.Filename(),
			Scale:    s.ScaleLabel(),
		})
	}
	return c
}

// WriteContents writes Contents.json into dir, overwriting any previous one.
func WriteContents(dir string, specs []icon.Spec) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}
	file, err := os.Create(filepath.Join(dir, "Contents.json"))
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(FromSpecs(specs))
}
