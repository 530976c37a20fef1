package navigation

// View represents the section currently shown in the UI
type View int

const (
	ViewHome View = iota
	ViewAbout
	ViewSkills
	ViewProjects
	ViewContact
)

// Views lists every view in navigation order
var Views = []View{ViewHome, ViewAbout, ViewSkills, ViewProjects, ViewContact}

// String returns the string representation of the view
func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewAbout:
		return "about"
	case ViewSkills:
		return "skills"
	case ViewProjects:
		return "projects"
	case ViewContact:
		return "contact"
	default:
		return "unknown"
	}
}

// Label returns the nav bar label for the view
func (v View) Label() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewAbout:
		return "About"
	case ViewSkills:
		return "Skills"
	case ViewProjects:
		return "Projects"
	case ViewContact:
		return "Contact"
	default:
		return ""
	}
}

// Valid reports whether the view belongs to the known set
func (v View) Valid() bool {
	return v >= ViewHome && v <= ViewContact
}

// ParseView maps a view name back to its View
func ParseView(name string) (View, bool) {
	for _, v := range Views {
		if v.String() == name {
			return v, true
		}
	}

	return invalidView, false
}

// invalidView is reported when the selector holds a state outside the known set
const invalidView View = -1
