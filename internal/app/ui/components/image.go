package components

import (
	"net/url"
	"strings"
)

// placeholderTextParam is the query parameter placeholder services use for the caption
const placeholderTextParam = "text"

// Image is a picture element; terminals cannot draw the bitmap, so it renders as a captioned frame
type Image struct {
	Src      string
	Alt      string
	Fallback string
	armed    bool
}

// NewImage creates an image whose failure handler is armed
func NewImage(src, alt, fallback string) *Image {
	return &Image{
		Src:      src,
		Alt:      alt,
		Fallback: fallback,
		armed:    true,
	}
}

// Fail handles a load failure by swapping in the fallback source.
// The handler disarms after the first call so a broken fallback cannot loop.
func (i *Image) Fail() bool {
	if i == nil || !i.armed {
		return false
	}

	i.armed = false
	i.Src = i.Fallback

	return true
}

// Failed reports whether the fallback has been substituted
func (i *Image) Failed() bool {
	return i != nil && !i.armed
}

// Caption returns the text shown inside the frame
func (i *Image) Caption() string {
	if i == nil {
		return ""
	}

	if caption := placeholderText(i.Src); caption != "" {
		return caption
	}

	return i.Alt
}

// Render draws the frame at the given outer size
func (i *Image) Render(width, height int) string {
	width = max(width, MinImageWidth)
	height = max(height, 3)

	innerWidth := width - 2
	innerHeight := height - 2

	return ImageStyle.
		Width(innerWidth).
		Height(innerHeight).
		Render(Truncate(i.Caption(), innerWidth))
}

// placeholderText extracts the caption encoded in a placeholder URL
func placeholderText(src string) string {
	u, err := url.Parse(src)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(u.Query().Get(placeholderTextParam))
}

// ImageSet tracks every picture element on the page by id
type ImageSet struct {
	images map[string]*Image
	order  []string
}

// NewImageSet creates an empty image set
func NewImageSet() *ImageSet {
	return &ImageSet{images: make(map[string]*Image)}
}

// Add registers an image under id, replacing any previous one
func (s *ImageSet) Add(id string, img *Image) {
	if _, exists := s.images[id]; !exists {
		s.order = append(s.order, id)
	}

	s.images[id] = img
}

// Get returns the image registered under id
func (s *ImageSet) Get(id string) (*Image, bool) {
	img, ok := s.images[id]
	return img, ok
}

// Fail triggers the failure handler of the image registered under id
func (s *ImageSet) Fail(id string) bool {
	img, ok := s.images[id]
	if !ok {
		return false
	}

	return img.Fail()
}

// IDs returns the registered ids in insertion order
func (s *ImageSet) IDs() []string {
	ids := make([]string, len(s.order))
	copy(ids, s.order)

	return ids
}
