// internal/words/words.go
//
// Provides the target word for new games.
//
// Responsibilities:
//   - Resolve the target from configuration, falling back to the embedded default.
//   - Normalize target and player input to Unicode NFC so that visually identical
//     Persian strings typed on different keyboards compare equal.
//
// Resolution order (Target):
//   1. An explicit word (TARGET_WORD) if non-empty.
//   2. A file (TARGET_FILE) whose first non-comment line is the word.
//   3. The embedded default from assets/target.txt.
//
// There is no word list and no dictionary check: any guess of the right length
// is accepted by the engine.

package words

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/robalobadob/hads/assets"
)

var ErrNoTarget = errors.New("words: no target word configured")

// Target resolves the target word. word takes precedence over path.
func Target(word, path string) (string, error) {
	if w := strings.TrimSpace(word); w != "" {
		return Normalize(w), nil
	}
	if path != "" {
		w, err := readWordFile(path)
		if err != nil {
			return "", err
		}
		if w == "" {
			return "", ErrNoTarget
		}
		return Normalize(w), nil
	}
	w, err := assets.DefaultTarget()
	if err != nil {
		return "", err
	}
	if w == "" {
		return "", ErrNoTarget
	}
	return Normalize(w), nil
}

// Normalize returns s in NFC form. Nothing is rejected or case-folded.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// readWordFile returns the first non-empty, non-comment line of path.
func readWordFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		return w, nil
	}
	return "", sc.Err()
}
