package renderer

import (
	"encoding/base64"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// Photo is a profile image held in memory for embedding.
type Photo struct {
	MIME string
	Data []byte
}

// LoadPhoto reads an image from disk. An empty path yields a zero Photo.
func LoadPhoto(path string) (photo Photo, err error) {
	if path == "" {
		return photo, err
	}

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read photo: %s", path)
		return photo, err
	}

	photo, err = NewPhoto(data)
	if err != nil {
		err = errors.Wrapf(err, "invalid photo: %s", path)
		return photo, err
	}

	return photo, err
}

// NewPhoto wraps image bytes, rejecting anything that is not an image.
func NewPhoto(data []byte) (photo Photo, err error) {
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		err = errors.Errorf("not an image (detected %s)", mtype.String())
		return photo, err
	}

	photo = Photo{
		MIME: mtype.String(),
		Data: data,
	}
	return photo, err
}

// IsZero reports whether no image is set.
func (p Photo) IsZero() (zero bool) {
	zero = len(p.Data) == 0
	return zero
}

// DataURI returns the image as a base64 data URI.
func (p Photo) DataURI() (uri string) {
	if p.IsZero() {
		return uri
	}
	uri = "data:" + p.MIME + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
	return uri
}
