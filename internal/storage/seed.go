package storage

import "fusion-site/models"

// SeedEvents returns the fixed catalogue loaded at start-up.
func SeedEvents() []models.Event {
	return []models.Event{
		{
			ID:          "fusion-summer-school-2024",
			Title:       "Nigerian Fusion Summer School",
			Year:        "2024",
			Description: "Intensive two-week program covering fusion reactor fundamentals, plasma confinement, and magnetic field theory with hands-on laboratory sessions.",
			Images:      []string{"/api/images/workshop", "/api/images/lab"},
			Tags:        []string{"School", "Training", "Fusion"},
			Order:       1,
		},
		{
			ID:          "plasma-diagnostics-workshop-2024",
			Title:       "Plasma Diagnostics Workshop",
			Year:        "2024",
			Description: "Advanced workshop on plasma measurement techniques including spectroscopy, interferometry, and probe diagnostics for fusion research.",
			Images:      []string{"/api/images/lab", "/api/images/facility"},
			Tags:        []string{"Workshop", "Research"},
			Order:       2,
		},
		{
			ID:          "international-fusion-conference-2023",
			Title:       "West African Fusion Energy Conference",
			Year:        "2023",
			Description: "International gathering of fusion scientists and researchers from across Africa and global institutions discussing collaborative research initiatives.",
			Images:      []string{"/api/images/conference", "/api/images/workshop"},
			Tags:        []string{"Conference", "International"},
			Order:       3,
		},
		{
			ID:          "reactor-engineering-school-2023",
			Title:       "Tokamak Engineering School",
			Year:        "2023",
			Description: "Specialized training program on tokamak reactor design, superconducting magnets, and plasma heating systems for aspiring fusion engineers.",
			Images:      []string{"/api/images/facility", "/api/images/lab"},
			Tags:        []string{"School", "Engineering"},
			Order:       4,
		},
		{
			ID:          "plasma-physics-fundamentals-2022",
			Title:       "Plasma Physics Fundamentals",
			Year:        "2022",
			Description: "Foundation course covering plasma behavior, magnetohydrodynamics, and particle transport phenomena for graduate students and researchers.",
			Images:      []string{"/api/images/workshop", "/api/images/conference"},
			Tags:        []string{"Training", "Research"},
			Order:       5,
		},
		{
			ID:          "capacity-building-summit-2022",
			Title:       "African Capacity Building Summit",
			Year:        "2022",
			Description: "Strategic summit focused on developing fusion research infrastructure and training programs across African institutions.",
			Images:      []string{"/api/images/conference", "/api/images/facility"},
			Tags:        []string{"Conference", "Collaboration"},
			Order:       6,
		},
	}
}
