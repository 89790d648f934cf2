// Package classifier maps file names to programming language labels by extension.
package classifier

import "strings"

// Language pairs a language label with the file extensions it claims.
type Language struct {
	Label      string
	Extensions []string
}

// Languages is the recognition table, checked in order. The first language
// whose extension list contains the file's extension wins.
var Languages = []Language{
	{Label: "Python", Extensions: []string{"py", "pyw"}},
	{Label: "C", Extensions: []string{"c", "h"}},
	{Label: "C++", Extensions: []string{"cpp", "hpp", "cc", "cxx"}},
	{Label: "C#", Extensions: []string{"cs"}},
	{Label: "JavaScript", Extensions: []string{"js", "jsx"}},
	{Label: "Java", Extensions: []string{"java"}},
	{Label: "Go", Extensions: []string{"go"}},
}

// Classify returns the language label for a file name and whether the
// extension is recognized. The extension is the lowercased substring after
// the last dot; a name without a dot is matched as a whole.
func Classify(name string) (string, bool) {
	ext := strings.ToLower(name)
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		ext = strings.ToLower(name[idx+1:])
	}
	for _, lang := range Languages {
		for _, e := range lang.Extensions {
			if e == ext {
				return lang.Label, true
			}
		}
	}
	return "", false
}
