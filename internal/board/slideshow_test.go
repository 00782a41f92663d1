package board

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	aqm "github.com/appetiteclub/apt"
)

func TestSlideshowList(t *testing.T) {
	t.Run("filtersToImages", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"b.png", "a.jpg", "c.JPEG", "d.webp", "e.gif", "notes.txt", "clip.mp4"} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
				t.Fatal(err)
			}
		}
		if err := os.Mkdir(filepath.Join(dir, "nested.png"), 0o755); err != nil {
			t.Fatal(err)
		}

		s := NewSlideshow(dir, aqm.NewNoopLogger())
		got := s.List()
		want := []string{
			"/img/slider/a.jpg",
			"/img/slider/b.png",
			"/img/slider/c.JPEG",
			"/img/slider/d.webp",
			"/img/slider/e.gif",
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("List() = %v, want %v", got, want)
		}
	})

	t.Run("emptyDir", func(t *testing.T) {
		s := NewSlideshow(t.TempDir(), aqm.NewNoopLogger())
		got := s.List()
		if got == nil || len(got) != 0 {
			t.Errorf("List() = %v, want empty non-nil slice", got)
		}
	})

	t.Run("missingDirYieldsEmpty", func(t *testing.T) {
		s := NewSlideshow("/no/such/dir", aqm.NewNoopLogger())
		got := s.List()
		if got == nil || len(got) != 0 {
			t.Errorf("List() = %v, want empty non-nil slice", got)
		}
	})
}
