package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"
)

var (
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
)

const thumbnailWidth = 300

// allowed maps sniffed MIME types to the extension files are stored with.
var allowed = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
	"video/mp4":       ".mp4",
}

// thumbnailable lists the formats imaging can decode. webp is decode-only
// via the registered x/image decoder; thumbnails are always written as jpeg.
var thumbnailable = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type StoredFile struct {
	FileName     string
	MimeType     string
	Size         int64
	URL          string
	ThumbnailURL *string
}

type Store interface {
	Save(r io.Reader) (*StoredFile, error)
	Remove(file *StoredFile) error
}

type localStore struct {
	dir       string
	publicURL string
	maxBytes  int64
	log       *zap.Logger
}

func NewLocalStore(dir, publicURL string, maxBytes int64, log *zap.Logger) (Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, "thumb"), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localStore{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxBytes:  maxBytes,
		log:       log.With(zap.String("storage", "local")),
	}, nil
}

// Save sniffs the content type, rejects anything outside the allow-list and
// writes the file plus, for decodable images, a 300px wide thumbnail.
func (s *localStore) Save(r io.Reader) (*StoredFile, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, ErrTooLarge
	}

	detected := mimetype.Detect(data)
	var mimeType, ext string
	for m := detected; m != nil; m = m.Parent() {
		if e, ok := allowed[m.String()]; ok {
			mimeType, ext = m.String(), e
			break
		}
	}
	if ext == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, detected.String())
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("write upload: %w", err)
	}

	out := &StoredFile{
		FileName: name,
		MimeType: mimeType,
		Size:     int64(len(data)),
		URL:      path.Join(s.publicURL, name),
	}

	if thumbnailable[mimeType] {
		thumbURL, err := s.thumbnail(name, data)
		if err != nil {
			// the original is still usable without a preview
			s.log.Warn("Thumbnail generation failed", zap.Error(err), zap.String("file", name))
		} else {
			out.ThumbnailURL = &thumbURL
		}
	}

	return out, nil
}

func (s *localStore) thumbnail(name string, data []byte) (string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	thumbName := strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, filepath.Join(s.dir, "thumb", thumbName)); err != nil {
		return "", fmt.Errorf("save thumbnail: %w", err)
	}
	return path.Join(s.publicURL, "thumb", thumbName), nil
}

func (s *localStore) Remove(file *StoredFile) error {
	var errs []error
	if err := os.Remove(filepath.Join(s.dir, file.FileName)); err != nil && !os.IsNotExist(err) {
		errs = append(errs, err)
	}
	if file.ThumbnailURL != nil {
		thumb := filepath.Join(s.dir, "thumb", path.Base(*file.ThumbnailURL))
		if err := os.Remove(thumb); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
