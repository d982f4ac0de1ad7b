package services

import (
	"fmt"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"time"
)

// MediaService stores uploaded files in a flat public directory.
type MediaService struct {
	dir       string
	urlPrefix string
	now       func() time.Time
	random    func() int64
}

func NewMediaService(dir, urlPrefix string) *MediaService {
	return &MediaService{
		dir:       dir,
		urlPrefix: urlPrefix,
		now:       time.Now,
		random:    func() int64 { return rand.Int63n(1e9) },
	}
}

type MediaFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// SanitizeFilename keeps only ASCII letters, digits and dots.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(filepath.Base(name), "")
}

// EnsureDir creates the upload directory if it does not exist.
func (s *MediaService) EnsureDir() error {
	return os.MkdirAll(s.dir, 0755)
}

// StoredName builds "<unix millis>-<random>-<sanitized original>".
func (s *MediaService) StoredName(original string) string {
	return fmt.Sprintf("%d-%d-%s", s.now().UnixMilli(), s.random(), SanitizeFilename(original))
}

// Path returns where a stored file lives on disk.
func (s *MediaService) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// URL returns the public URL for a stored file.
func (s *MediaService) URL(name string) string {
	return path.Join(s.urlPrefix, name)
}

// List enumerates every regular file in the upload directory, newest first.
func (s *MediaService) List() ([]MediaFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []MediaFile{}, nil
		}
		return nil, err
	}

	files := make([]MediaFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, MediaFile{Name: entry.Name(), URL: s.URL(entry.Name())})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name > files[j].Name
	})
	return files, nil
}
