package styles

// order fixes table iteration order. Go maps iterate randomly; accessors
// that promise table order walk this slice instead.
var order = []string{
	"ember",
	"verdant",
	"ultraviolet",
	"cobalt",
	"slate",
	"dune",
	"orchid",
	"aurora",
}

var table = map[string]Style{
	"ember": {
		Name:          "Ember",
		Primary:       "#E4572E",
		PrimaryLight:  "#F28F6B",
		Secondary:     "#29335C",
		Accent:        "#F3A712",
		Gradient:      "linear-gradient(135deg, #E4572E 0%, #F3A712 100%)",
		ContrastRatio: "4.8:1",
		RAL:           "RAL 2001",
		Category:      CategoryPrimary,
		Usage:         "Hero sections and primary calls to action for flagship ventures",
	},
	"verdant": {
		Name:          "Verdant",
		Primary:       "#2E7D32",
		PrimaryLight:  "#66BB6A",
		Secondary:     "#1B5E20",
		Accent:        "#C8E6C9",
		Gradient:      "linear-gradient(160deg, #2E7D32 0%, #66BB6A 100%)",
		ContrastRatio: "6.1:1",
		RAL:           "RAL 6029",
		Category:      CategoryPrimary,
		Usage:         "Sustainability and agritech venture branding",
	},
	"ultraviolet": {
		Name:          "Ultraviolet",
		Primary:       "#6A0DAD",
		PrimaryLight:  "#9B59B6",
		Secondary:     "#2C0735",
		Accent:        "#E0B0FF",
		Gradient:      "linear-gradient(120deg, #6A0DAD 0%, #2C0735 100%)",
		ContrastRatio: "7.2:1",
		RAL:           "RAL 4008",
		Category:      CategoryPrimary,
		Usage:         "Technology-forward ventures needing a bold identity",
	},
	"cobalt": {
		Name:          "Cobalt",
		Primary:       "#0047AB",
		PrimaryLight:  "#4D7FD1",
		Secondary:     "#001F54",
		Accent:        "#FFD700",
		Gradient:      "linear-gradient(135deg, #001F54 0%, #0047AB 100%)",
		ContrastRatio: "8.6:1",
		RAL:           "RAL 5005",
		Category:      CategoryPrimary,
		Usage:         "Finance and infrastructure ventures, trust-led palettes",
	},
	"slate": {
		Name:          "Slate",
		Primary:       "#708090",
		PrimaryLight:  "#A3B0BD",
		Secondary:     "#36454F",
		Accent:        "#E8EDF1",
		Gradient:      "linear-gradient(180deg, #A3B0BD 0%, #36454F 100%)",
		ContrastRatio: "4.6:1",
		RAL:           "RAL 7015",
		Category:      CategorySecondary,
		Usage:         "Neutral backdrop for documentation and support sites",
	},
	"dune": {
		Name:          "Dune",
		Primary:       "#C2B280",
		PrimaryLight:  "#DCD0A8",
		Secondary:     "#8A7D55",
		Accent:        "#4A3F2A",
		Gradient:      "linear-gradient(150deg, #DCD0A8 0%, #8A7D55 100%)",
		ContrastRatio: "4.5:1",
		RAL:           "RAL 1002",
		Category:      CategorySecondary,
		Usage:         "Warm accents for lifestyle pipeline brands",
	},
	"orchid": {
		Name:          "Orchid",
		Primary:       "#AF69EE",
		PrimaryLight:  "#D8B4F8",
		Secondary:     "#5D3A7E",
		Accent:        "#2B1B3D",
		Gradient:      "linear-gradient(135deg, #D8B4F8 0%, #AF69EE 100%)",
		ContrastRatio: "5.0:1",
		Category:      CategorySecondary,
		Usage:         "Soft highlight palette for early pipeline landing pages",
	},
	"aurora": {
		Name:          "Aurora",
		Primary:       "#00C2A8",
		PrimaryLight:  "#7FE7D9",
		Secondary:     "#015D52",
		Accent:        "#F5FFFD",
		Gradient:      "linear-gradient(110deg, #00C2A8 0%, #7FE7D9 45%, #015D52 100%)",
		ContrastRatio: "5.4:1",
		Category:      CategorySecondary,
		Usage:         "Experimental gradients for venture concept previews",
		Note:          "No RAL match yet, pending print validation",
	},
}
