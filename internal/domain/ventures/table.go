package ventures

// order fixes table iteration order for the status-filter accessors.
var order = []string{
	"amorphing",
	"brainfruit",
	"primovivo",
	"green-p",
	"venture-04",
	"kitefin",
	"mossline",
	"solfount",
	"quietmark",
	"holdfast",
}

var table = map[string]Venture{
	"amorphing": {
		Name:   "Amorphing",
		Domain: "amorphing.io",
		Style:  "ultraviolet",
		Logo:   Logo{Letter: "A", Case: CaseUpper},
		Fonts:  Typography{Heading: "Space Grotesk", Body: "Inter"},
		Status: StatusActive,
		Description: "Adaptive manufacturing platform that reshapes production " +
			"lines around live demand signals.",
	},
	"brainfruit": {
		Name:   "brainfruit",
		Domain: "brainfruit.com",
		Style:  "verdant",
		Logo:   Logo{Letter: "b", Case: CaseLower},
		Fonts:  Typography{Heading: "Fraunces", Body: "Work Sans"},
		Status: StatusActive,
		Description: "Learning tools that grow with the learner, from first " +
			"sketch to mastery.",
	},
	"primovivo": {
		Name:   "PRIMOVIVO",
		Domain: "primovivo.com",
		Style:  "ember",
		Logo:   Logo{Letter: "P", Case: CaseUpper},
		Fonts:  Typography{Heading: "Archivo Black", Body: "Archivo"},
		Status: StatusActive,
		Description: "Premium fresh-food subscription built on direct grower " +
			"partnerships.",
	},
	"green-p": {
		Name:   "Green-P",
		Domain: "green-p.eco",
		Style:  "verdant",
		Logo:   Logo{Letter: "G", Case: CaseUpper},
		Fonts:  Typography{Heading: "Sora", Body: "Source Sans 3"},
		Status: StatusPipeline,
		Description: "Urban parking surfaces converted to micro-green " +
			"infrastructure.",
	},
	"venture-04": {
		Name:   "Venture-04",
		Domain: "venture04.dev",
		Style:  "slate",
		Logo:   Logo{Letter: "V", Case: CaseUpper},
		Fonts:  Typography{Heading: "IBM Plex Sans", Body: "IBM Plex Sans"},
		Status: StatusPipeline,
		Description: "Working title for the developer tooling spin-out, " +
			"naming in progress.",
	},
	"kitefin": {
		Name:   "Kitefin",
		Domain: "kitefin.app",
		Style:  "cobalt",
		Logo:   Logo{Letter: "K", Case: CaseUpper},
		Fonts:  Typography{Heading: "Manrope", Body: "Manrope"},
		Status: StatusPipeline,
		Description: "Treasury dashboards for small funds, built around " +
			"daily position snapshots.",
	},
	"mossline": {
		Name:   "mossline",
		Domain: "mossline.earth",
		Style:  "dune",
		Logo:   Logo{Letter: "m", Case: CaseLower},
		Fonts:  Typography{Heading: "Lora", Body: "Karla"},
		Status: StatusPipeline,
		Description: "Slow-textile label sourcing undyed fibers from " +
			"regenerative farms.",
	},
	"solfount": {
		Name:   "Solfount",
		Domain: "solfount.com",
		Style:  "aurora",
		Logo:   Logo{Letter: "S", Case: CaseUpper},
		Fonts:  Typography{Heading: "Outfit", Body: "Outfit"},
		Status: StatusPipeline,
		Description: "Community solar purchasing pools with transparent " +
			"yield reporting.",
	},
	"quietmark": {
		Name:        "Quietmark",
		Domain:      "quietmark.studio",
		Style:       "orchid",
		Logo:        Logo{Letter: "Q", Case: CaseUpper},
		Fonts:       Typography{Heading: "Cormorant Garamond", Body: "Mulish"},
		Status:      StatusPipeline,
		Description: "Acoustic design studio for open-plan workplaces.",
	},
	"holdfast": {
		Name:        "Holdfast",
		Domain:      "holdfast.capital",
		Style:       "cobalt",
		Logo:        Logo{Letter: "H", Case: CaseUpper},
		Fonts:       Typography{Heading: "Libre Franklin", Body: "Libre Franklin"},
		Status:      StatusPipeline,
		Description: "Long-horizon holding vehicle for portfolio spin-outs.",
	},
}
