package shell

import "time"

type NavItem struct {
	Label   string
	Section string
}

var NavItems = []NavItem{
	{Label: "Home", Section: "hero"},
	{Label: "About", Section: "about"},
	{Label: "Events", Section: "events"},
	{Label: "Contact", Section: "contact"},
}

type Feature struct {
	Icon        string
	Title       string
	Description string
}

var Features = []Feature{
	{
		Icon:        "atom",
		Title:       "Fusion Research",
		Description: "Advancing fundamental plasma physics and fusion energy research in Nigeria through cutting-edge experiments and theoretical studies.",
	},
	{
		Icon:        "graduation-cap",
		Title:       "Capacity Building",
		Description: "Training the next generation of Nigerian physicists and engineers in plasma physics and fusion technology through intensive programs.",
	},
	{
		Icon:        "users",
		Title:       "Collaboration",
		Description: "Building partnerships with international fusion research institutions including ITER, IAEA, and leading universities worldwide.",
	},
	{
		Icon:        "globe",
		Title:       "Global Impact",
		Description: "Contributing to the global effort for clean, sustainable fusion energy while developing Africa's scientific capabilities.",
	},
}

type Hero struct {
	Badge     string
	Lead      string
	Highlight string
	Trail     string
	Tagline   string
	Image     string
}

var HeroContent = Hero{
	Badge:     "Advancing African Science",
	Lead:      "Nigerian School on",
	Highlight: "Plasma Physics",
	Trail:     "and Fusion Energy",
	Tagline:   "Advancing Fusion Science, Plasma Research & Capacity Building in Nigeria and Africa",
	Image:     "/api/images/hero",
}

const (
	OrgShort   = "NSFEPP"
	OrgName    = "Nigerian School on Fusion Energy & Plasma Physics"
	AboutIntro = "The Nigerian School on Plasma Physics and Fusion Energy is dedicated to advancing fusion science research and building scientific capacity across Africa through education, research, and international collaboration."
	Mission    = "Our mission is to position Africa at the forefront of fusion energy research by nurturing scientific talent and fostering international partnerships that will shape the future of clean energy."
)

type ContactInfo struct {
	Email    string
	Location string
	Website  string
}

var Contact = ContactInfo{
	Email:    "contact@nsfepp.org",
	Location: "Lagos, Nigeria",
	Website:  "www.nsfepp.org",
}

// Copyright is the footer line for the year of now.
func Copyright(now time.Time) string {
	return "© " + now.Format("2006") + " " + OrgName + ". All rights reserved."
}
