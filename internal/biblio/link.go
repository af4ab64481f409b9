// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package biblio

// indexSection is the section name of the multipage landing page.
const indexSection = "index"

// Linker builds hrefs to document ids. For a multipage build IDToSection maps
// each id to the page that holds it; a nil map means a single-page document.
type Linker struct {
	IDToSection map[string]string
}

// LinkTo returns the href for id.
func (l Linker) LinkTo(id string) string {
	hash := "#" + id
	section, ok := l.IDToSection[id]
	if !ok || section == "" {
		return hash
	}
	if section == indexSection {
		return "./" + hash
	}
	return section + ".html" + hash
}
