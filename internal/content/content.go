// Package content is the compiled-in store of everything the portfolio page
// shows. The sequences are fixed before the first render and handed out as
// copies.
package content

import "vkarpe.dev/internal/models"

const (
	DefaultProjectColumns = 3
	DefaultSkillColumns   = 4
)

var defaultContent = models.Content{
	Profile: models.Profile{
		Brand:      "Dev.Portfolio",
		Greeting:   "Hi, my name is",
		Name:       "Vinayak Karpe",
		Headline:   "Full-Stack Web Developer & DevOps Enthusiast",
		Summary:    "I build scalable, performant web applications with clean architecture, modern UI, and production-ready DevOps workflows.",
		ResumePath: "/resume.pdf",
		Email:      "karpe.vinayak2001@gmail.com",

		ContactHeading: "Get In Touch",
		ContactBlurb:   "Open to junior developer & DevOps roles. Let’s build something impactful together.",
		Socials: []models.Social{
			{Label: "LinkedIn", Icon: models.IconLinkedin, URL: "https://www.linkedin.com/in/vinayak-karpe/"},
			{Label: "GitHub", Icon: models.IconGithub, URL: "https://github.com/VinayakKarpe2207"},
		},
		Footer: "Built with Go, templ & chi. Served as a single static page.",
	},
	Layout: models.Layout{
		ProjectColumns: DefaultProjectColumns,
		SkillColumns:   DefaultSkillColumns,
	},
	Projects: []models.Project{
		{
			Title:         "Fashion-Fleet E-Commerce",
			Description:   "A high-performance MERN platform featuring Redux state management, secure JWT authentication, and a sleek product filtering system.",
			Technologies:  []string{"React", "Node.js", "MongoDB", "Redux"},
			ImageURL:      "https://images.unsplash.com/photo-1441986300917-64674bd600d8?q=80&w=800&auto=format&fit=crop",
			RepositoryURL: "https://github.com/VinayakKarpe2207/Fashion-Fleet-E-Commerce-",
			LiveURL:       "#",
		},
		{
			Title:         "Travel-Story",
			Description:   "Social journaling application with cloud storage. Built to handle full CRUD operations for travel logs and media uploads.",
			Technologies:  []string{"MERN Stack", "Atlas", "Vercel", "Tailwind"},
			ImageURL:      "https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1?q=80&w=800&auto=format&fit=crop",
			RepositoryURL: "https://github.com/VinayakKarpe2207/Travel-Story-App",
			LiveURL:       "#",
		},
		{
			Title:         "Restaurant Reservation",
			Description:   "Professional internship project featuring a secure table-booking logic and real-time data validation for restaurant management.",
			Technologies:  []string{"React", "Express", "Node.js", "MongoDB"},
			ImageURL:      "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?q=80&w=800&auto=format&fit=crop",
			RepositoryURL: "https://github.com/VinayakKarpe2207/Restaurant-Application",
			LiveURL:       "#",
		},
	},
	SkillGroups: []models.SkillGroup{
		{Category: "Frontend", Icon: models.IconLayout, Tint: "blue", Summary: "React, Redux, Tailwind CSS"},
		{Category: "Backend", Icon: models.IconServer, Tint: "purple", Summary: "Node.js, Express.js, REST APIs"},
		{Category: "DevOps", Icon: models.IconTerminal, Tint: "green", Summary: "Vercel, Git, Linux, CI/CD"},
		{Category: "Databases", Icon: models.IconCode, Tint: "yellow", Summary: "MongoDB, MySQL"},
	},
}

var placeholderContent = models.Content{
	Profile: models.Profile{
		Brand:          "Dev.Portfolio",
		Greeting:       "Hi, my name is",
		Name:           "Your Name",
		Headline:       "I build things for the web.",
		Summary:        "A short paragraph about what you do, what you care about, and the kind of work you are looking for.",
		ResumePath:     "/resume.pdf",
		Email:          "you@example.com",
		ContactHeading: "Get In Touch",
		ContactBlurb:   "My inbox is always open. Whether you have a question or just want to say hi, I'll get back to you.",
		Socials: []models.Social{
			{Label: "LinkedIn", Icon: models.IconLinkedin, URL: "https://www.linkedin.com/"},
			{Label: "GitHub", Icon: models.IconGithub, URL: "https://github.com/"},
		},
		Footer: "Built with Go, templ & chi.",
	},
	Layout: models.Layout{
		ProjectColumns: 2,
		SkillColumns:   DefaultSkillColumns,
	},
	Projects: []models.Project{
		{
			Title:         "Project One",
			Description:   "What the project does and the problem it solves.",
			Technologies:  []string{"Go", "PostgreSQL"},
			RepositoryURL: "#",
			LiveURL:       "#",
		},
		{
			Title:         "Project Two",
			Description:   "What the project does and the problem it solves.",
			Technologies:  []string{"TypeScript", "React"},
			RepositoryURL: "#",
			LiveURL:       "#",
		},
	},
	SkillGroups: []models.SkillGroup{
		{Category: "Frontend", Icon: models.IconLayout, Tint: "blue", Summary: "HTML, CSS, JavaScript"},
		{Category: "Backend", Icon: models.IconServer, Tint: "purple", Summary: "Go, REST APIs"},
		{Category: "DevOps", Icon: models.IconTerminal, Tint: "green", Summary: "Docker, Git, Linux"},
		{Category: "Databases", Icon: models.IconCode, Tint: "yellow", Summary: "PostgreSQL, SQLite"},
	},
}

// Default returns the personalized content compiled into the binary
func Default() models.Content {
	return defaultContent.Clone()
}

// Placeholder returns the template variant of the page with stand-in copy
func Placeholder() models.Content {
	return placeholderContent.Clone()
}
