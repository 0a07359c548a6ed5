package sidecar

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/shotlink/shotlink/pkg/errors"
	"github.com/shotlink/shotlink/pkg/types"
)

// Meta holds the display-worthy fields of an XMP sidecar. Matching
// never looks at these; they exist purely for listings.
type Meta struct {
	Rating string
	Label  string
}

// Empty reports whether no fields were found.
func (m Meta) Empty() bool {
	return m.Rating == "" && m.Label == ""
}

// ReadMeta extracts rating and label from an XMP sidecar file. XMP
// writers vary: some put xmp:Rating/xmp:Label as attributes on the
// rdf:Description element, others as child elements. Both forms are
// handled; the first value found wins.
func ReadMeta(fsys types.FS, path string) (Meta, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return Meta{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to read sidecar %s", path)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return Meta{}, errors.Wrapf(err, errors.ErrInvalidInput, "failed to parse sidecar %s", path)
	}

	var meta Meta
	for _, desc := range doc.FindElements("//Description") {
		for _, attr := range desc.Attr {
			switch attr.Key {
			case "Rating":
				if meta.Rating == "" {
					meta.Rating = strings.TrimSpace(attr.Value)
				}
			case "Label":
				if meta.Label == "" {
					meta.Label = strings.TrimSpace(attr.Value)
				}
			}
		}
		for _, child := range desc.ChildElements() {
			switch child.Tag {
			case "Rating":
				if meta.Rating == "" {
					meta.Rating = strings.TrimSpace(child.Text())
				}
			case "Label":
				if meta.Label == "" {
					meta.Label = strings.TrimSpace(child.Text())
				}
			}
		}
	}

	return meta, nil
}
