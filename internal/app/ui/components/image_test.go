package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSrc      = "https://placehold.co/400x250/1F2937/D1D5DB?text=Supply+Chain"
	testFallback = "https://placehold.co/400x250/1F2937/D1D5DB?text=Image+Error"
)

func Test_Image_Fail_SubstitutesOnce(t *testing.T) {
	img := NewImage(testSrc, "Supply Chain Dashboard", testFallback)

	assert.False(t, img.Failed())
	assert.True(t, img.Fail())
	assert.Equal(t, testFallback, img.Src)
	assert.True(t, img.Failed())

	img.Fallback = "https://example.com/other.png"

	assert.False(t, img.Fail(), "handler is disarmed after the first failure")
	assert.Equal(t, testFallback, img.Src)
}

func Test_Image_Fail_Nil(t *testing.T) {
	var img *Image

	assert.False(t, img.Fail())
	assert.False(t, img.Failed())
	assert.Empty(t, img.Caption())
}

func Test_Image_Caption(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		alt      string
		expected string
	}{
		{name: "placeholder text", src: testSrc, alt: "alt", expected: "Supply Chain"},
		{name: "encoded text", src: "https://placehold.co/1x1?text=Your%20Photo", alt: "alt", expected: "Your Photo"},
		{name: "no text param", src: "https://example.com/me.png", alt: "Your Profile", expected: "Your Profile"},
		{name: "unparseable url", src: "://bad", alt: "Your Profile", expected: "Your Profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := NewImage(tt.src, tt.alt, testFallback)
			assert.Equal(t, tt.expected, img.Caption())
		})
	}
}

func Test_Image_Render(t *testing.T) {
	img := NewImage(testSrc, "alt", testFallback)

	out := img.Render(30, 5)

	assert.Contains(t, out, "Supply Chain")
	assert.Equal(t, 30, lipgloss.Width(out))
	assert.Equal(t, 5, lipgloss.Height(out))

	img.Fail()
	assert.Contains(t, img.Render(30, 5), "Image Error")
}

func Test_Image_Render_ClampsSize(t *testing.T) {
	img := NewImage(testSrc, "alt", testFallback)

	out := img.Render(1, 1)

	assert.Equal(t, MinImageWidth, lipgloss.Width(out))
	assert.Equal(t, 3, lipgloss.Height(out))
}

func Test_ImageSet(t *testing.T) {
	set := NewImageSet()
	set.Add("project.0", NewImage(testSrc, "a", testFallback))
	set.Add("about.photo", NewImage(testSrc, "b", testFallback))
	set.Add("project.0", NewImage(testSrc, "c", testFallback))

	assert.Equal(t, []string{"project.0", "about.photo"}, set.IDs())

	img, ok := set.Get("project.0")
	require.True(t, ok)
	assert.Equal(t, "c", img.Alt)

	assert.True(t, set.Fail("project.0"))
	assert.False(t, set.Fail("project.0"))
	assert.False(t, set.Fail("missing"))
	assert.Equal(t, testFallback, img.Src)

	ids := set.IDs()
	ids[0] = "mutated"
	assert.Equal(t, "project.0", set.IDs()[0])
}

func Test_Hyperlink(t *testing.T) {
	url := "https://www.coursera.org/account/accomplishments/professional-cert/XJ0I74ZQGXUB?utm_source=link"

	out := Hyperlink("Google Data Analytics", url, LinkStyle)

	assert.Contains(t, out, "\x1b]8;;"+url)
	assert.Contains(t, out, "Google Data Analytics")
	assert.Equal(t, 2, strings.Count(out, "\x1b]8;;"), "link opens and closes")
}
