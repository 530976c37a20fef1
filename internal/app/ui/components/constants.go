package components

// Frame layout constants
const (
	NavHeight       = 2 // nav line plus separator
	FooterHeight    = 4 // separator, copyright, tagline, help
	MaxContentWidth = 140
	MinContentWidth = 30
	ContentPadding  = 2
)

// Grid breakpoints, in terminal columns
const (
	TwoColumnWidth   = 90
	ThreeColumnWidth = 135
	GridGap          = 2
)

// Image placeholder constants
const (
	ProfileImageWidth  = 24
	ProfileImageHeight = 7
	CardImageHeight    = 5
	MinImageWidth      = 8
)

// DefaultWidth is used when the terminal size is unknown
const DefaultWidth = 80
