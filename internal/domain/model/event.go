package model

// Event is a listed competition or showcase event.
type Event struct {
	ID          int64
	Position    int
	Title       string
	DateLabel   string
	Location    string
	Description string
	ImageURL    string
}

// ShowcaseImage is one entry of the image showcase gallery.
type ShowcaseImage struct {
	ID       int64
	Position int
	ImageURL string
	Caption  string
}
