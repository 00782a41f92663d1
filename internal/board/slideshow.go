package board

import (
	"os"
	"path"
	"sort"
	"strings"

	aqm "github.com/appetiteclub/apt"
)

// Slideshow lists promo images for the pause screens. The directory is
// scanned on every request so operators can drop files in without a
// restart.
type Slideshow struct {
	dir    string
	logger aqm.Logger
}

func NewSlideshow(dir string, logger aqm.Logger) *Slideshow {
	if logger == nil {
		logger = aqm.NewNoopLogger()
	}
	return &Slideshow{dir: dir, logger: logger}
}

// List returns the public URL paths of the slider images, sorted by name.
// Any failure yields an empty list: a display with no slideshow is better
// than a display with an error.
func (s *Slideshow) List() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Debug("cannot read slider directory", "dir", s.dir, "error", err)
		return []string{}
	}

	images := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg", ".gif", ".webp":
			images = append(images, "/img/slider/"+e.Name())
		}
	}
	sort.Strings(images)
	return images
}
