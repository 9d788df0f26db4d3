// assets/embed.go
//
// Embedded defaults so the binaries run without any external files.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed target.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// DefaultTarget returns the first word listed in target.txt.
func DefaultTarget() (string, error) {
	lines, err := readLines("target.txt")
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", nil
	}
	return lines[0], nil
}
