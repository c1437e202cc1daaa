package workbook

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"
)

// readZipFile returns the named part, or nil if the package has no such part.
func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// readElementText collects the character data up to the end of the current element.
func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

// resolveRelativePath turns a relationship target into a package part name.
func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/xl/") {
		return strings.TrimPrefix(target, "/")
	}
	if strings.HasPrefix(target, "/") {
		return baseDir + target
	}
	return baseDir + "/" + target
}

// relsPathFor returns the relationships part of a part, e.g.
// xl/worksheets/sheet1.xml -> xl/worksheets/_rels/sheet1.xml.rels.
func relsPathFor(part string) string {
	dir, file := "", part
	if i := strings.LastIndex(part, "/"); i >= 0 {
		dir, file = part[:i+1], part[i+1:]
	}
	return dir + "_rels/" + file + ".rels"
}

type sheetEntry struct {
	name string
	rID  string
}

// parseWorkbookSheets lists sheet names with their relationship ids, in workbook order.
func parseWorkbookSheets(data []byte) []sheetEntry {
	var result []sheetEntry
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result = append(result, sheetEntry{name: name, rID: rID})
			}
		}
	}

	return result
}

// parseRelationships maps relationship id to target for every relationship
// whose type contains kind ("worksheet", "drawing", "chart").
func parseRelationships(data []byte, kind string) map[string]string {
	result := make(map[string]string)
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target, relType string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				case "Type":
					relType = attr.Value
				}
			}
			if strings.HasSuffix(strings.ToLower(relType), "/"+kind) {
				result[rID] = target
			}
		}
	}

	return result
}
