package sections

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"folio/internal/app/ui/components"
	"folio/internal/app/ui/navigation"
	"folio/internal/config/logger"
	"folio/internal/content"
)

// AboutPhotoID identifies the profile picture element
const AboutPhotoID = "about.photo"

// ProjectImageID identifies the picture element of the i-th project card
func ProjectImageID(i int) string {
	return fmt.Sprintf("project.%d", i)
}

// Renderer produces the five portfolio sections from constant content
type Renderer struct {
	content *content.Portfolio
	images  *components.ImageSet
	log     logger.Logger

	markdown struct {
		width    int
		renderer *glamour.TermRenderer
	}
}

// NewRenderer creates a renderer and registers every picture element of the page
func NewRenderer(p *content.Portfolio, log logger.Logger) *Renderer {
	r := &Renderer{
		content: p,
		images:  components.NewImageSet(),
		log:     log.WithComponent("SECTIONS"),
	}

	r.images.Add(AboutPhotoID, components.NewImage(p.Profile.PhotoURL, "Your Profile", p.Profile.PhotoFallbackURL))

	for i, project := range p.Projects {
		r.images.Add(ProjectImageID(i), components.NewImage(project.ImageURL, project.Title, p.ProjectImageFallback))
	}

	return r
}

// Content returns the portfolio being rendered
func (r *Renderer) Content() *content.Portfolio {
	return r.content
}

// Images returns the picture elements of the page
func (r *Renderer) Images() *components.ImageSet {
	return r.images
}

// Render dispatches to the producer of view; anything outside the known set renders home
func (r *Renderer) Render(view navigation.View, width int) string {
	switch view {
	case navigation.ViewHome:
		return r.Home(width)
	case navigation.ViewAbout:
		return r.About(width)
	case navigation.ViewSkills:
		return r.Skills(width)
	case navigation.ViewProjects:
		return r.Projects(width)
	case navigation.ViewContact:
		return r.Contact(width)
	default:
		r.log.Debug().Msgf("Unknown view %d, rendering home", int(view))
		return r.Home(width)
	}
}

// image returns the registered picture element, or a bare placeholder if id is unknown
func (r *Renderer) image(id string) *components.Image {
	img, ok := r.images.Get(id)
	if !ok {
		return components.NewImage("", id, "")
	}

	return img
}
