package insight

// HomeContent is the static copy of the HOME page.
type HomeContent struct {
	Heading  string   `json:"heading"`
	Summary  string   `json:"summary"`
	Features []string `json:"features"`
	LinkText string   `json:"link_text"`
	LinkURL  string   `json:"link_url"`
}

// HomePage returns the HOME page content.
func HomePage() HomeContent {
	return HomeContent{
		Heading: "About Ola Cabs",
		Summary: "Ola is one of India's largest mobility platforms, providing various ride-hailing services including Micro, Mini, Prime, and Auto.",
		Features: []string{
			"Real-time tracking",
			"Multiple payment options",
			"Ride history & invoices",
			"Driver and rider ratings",
		},
		LinkText: "Book Your Ride Now",
		LinkURL:  "https://www.olacabs.com/",
	}
}
