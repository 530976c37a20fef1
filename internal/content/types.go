package content

// EntryKind discriminates the two shapes a skill entry can take
type EntryKind int

const (
	EntryText EntryKind = iota
	EntryLink
)

// String returns the string representation of the entry kind
func (k EntryKind) String() string {
	switch k {
	case EntryText:
		return "text"
	case EntryLink:
		return "link"
	default:
		return "unknown"
	}
}

// SkillEntry is either a plain label or a labeled link
type SkillEntry struct {
	Kind  EntryKind
	Label string
	URL   string
}

// Text creates a plain label entry
func Text(label string) SkillEntry {
	return SkillEntry{Kind: EntryText, Label: label}
}

// Link creates a labeled link entry
func Link(label, url string) SkillEntry {
	return SkillEntry{Kind: EntryLink, Label: label, URL: url}
}

// IsLink reports whether the entry points somewhere
func (e SkillEntry) IsLink() bool {
	return e.Kind == EntryLink
}

// SkillCategory groups skill entries under a heading
type SkillCategory struct {
	Name    string
	Entries []SkillEntry
}

// Project represents a portfolio project card
type Project struct {
	Title       string
	Description string
	Tags        []string
	ImageURL    string
	LiveLink    string
	RepoLink    string
}

// SocialLink is an external profile
type SocialLink struct {
	Label string
	URL   string
}

// Profile holds the biography shown on the home and about sections
type Profile struct {
	Name             string
	Headline         string
	Bio              []string
	Quote            string
	QuoteAuthor      string
	PhotoURL         string
	PhotoFallbackURL string
}

// Contact holds direct contact details
type Contact struct {
	Email    string
	Phone    string
	PhoneURI string
	Profiles []SocialLink
}

// MailtoURI returns the mailto link for the email address
func (c Contact) MailtoURI() string {
	return "mailto:" + c.Email
}

// Portfolio aggregates every piece of content the sections render
type Portfolio struct {
	Profile              Profile
	Skills               []SkillCategory
	Projects             []Project
	ProjectImageFallback string
	Contact              Contact
	Tagline              string
}
