package icons

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DefaultSpritePath is the sprite sheet location relative to the theme directory.
const DefaultSpritePath = "assets/images/svg-icons.svg"

// IncludeSprite copies the sprite sheet at path to w. A missing file is
// not an error: the page simply renders without icon glyphs.
func IncludeSprite(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("opening sprite sheet: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("writing sprite sheet: %w", err)
	}
	return nil
}
