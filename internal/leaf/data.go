package leaf

import (
	"github.com/goliatone/go-forgery/pkg/locale"
	"github.com/goliatone/go-forgery/pkg/rng"
)

// tables bundles the static strings a locale contributes. Any nil slice falls
// back to the en_US entry.
type tables struct {
	firstNames      []string
	lastNames       []string
	cities          []string
	regions         []string
	streetNames     []string
	streetSuffixes  []string
	companyPrefixes []string
	companySuffixes []string
	// streetTypePrefix places the street type before the name
	// ("Calle Mayor" rather than "Main Street").
	streetTypePrefix bool
}

var enUS = tables{
	firstNames: []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
		"Linda", "William", "Elizabeth", "David", "Barbara", "Richard", "Susan",
		"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Daniel",
		"Nancy", "Matthew", "Lisa", "Anthony", "Betty", "Mark", "Margaret",
	},
	lastNames: []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
		"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
		"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	},
	cities: []string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
		"Philadelphia", "San Antonio", "San Diego", "Dallas", "Austin",
		"Seattle", "Denver", "Boston", "Portland", "Atlanta", "Miami",
	},
	regions: []string{
		"Alabama", "Alaska", "Arizona", "California", "Colorado", "Florida",
		"Georgia", "Illinois", "Michigan", "Nevada", "New York", "Ohio",
		"Oregon", "Texas", "Utah", "Virginia", "Washington", "Wisconsin",
	},
	streetNames: []string{
		"Main", "Oak", "Maple", "Cedar", "Pine", "Elm", "Washington", "Lake",
		"Hill", "Park", "River", "Spring", "Ridge", "Sunset", "Meadow",
	},
	streetSuffixes: []string{
		"Street", "Avenue", "Boulevard", "Drive", "Lane", "Road", "Court", "Place",
	},
	companyPrefixes: []string{
		"Global", "United", "Advanced", "Pacific", "Summit", "Pioneer",
		"Sterling", "Apex", "Cascade", "Horizon", "Vertex", "Quantum",
	},
	companySuffixes: []string{
		"Industries", "Solutions", "Systems", "Technologies", "Group",
		"Holdings", "Partners", "Labs", "Dynamics", "Enterprises",
	},
}

var localeTables = map[locale.Locale]tables{
	locale.EnUS: enUS,
	locale.EnGB: {
		firstNames: []string{
			"Oliver", "Amelia", "George", "Isla", "Harry", "Olivia", "Jack",
			"Emily", "Charlie", "Poppy", "Thomas", "Sophie", "Oscar", "Grace",
		},
		lastNames: []string{
			"Smith", "Jones", "Taylor", "Brown", "Williams", "Wilson",
			"Johnson", "Davies", "Robinson", "Wright", "Thompson", "Evans",
		},
		cities: []string{
			"London", "Manchester", "Birmingham", "Leeds", "Glasgow",
			"Liverpool", "Bristol", "Sheffield", "Edinburgh", "Cardiff",
		},
		regions: []string{
			"England", "Scotland", "Wales", "Northern Ireland", "Yorkshire",
			"Cornwall", "Kent", "Essex", "Surrey", "Devon",
		},
		streetNames: []string{
			"High", "Church", "Station", "Victoria", "Green", "Manor",
			"Kings", "Queens", "Mill", "School",
		},
		streetSuffixes: []string{"Street", "Road", "Lane", "Close", "Gardens", "Way"},
	},
	locale.DeDE: {
		firstNames: []string{
			"Lukas", "Anna", "Leon", "Lena", "Finn", "Marie", "Jonas", "Emma",
			"Paul", "Mia", "Felix", "Sophia", "Maximilian", "Hannah",
		},
		lastNames: []string{
			"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer",
			"Wagner", "Becker", "Schulz", "Hoffmann", "Koch", "Bauer",
		},
		cities: []string{
			"Berlin", "Hamburg", "München", "Köln", "Frankfurt", "Stuttgart",
			"Düsseldorf", "Leipzig", "Dortmund", "Dresden",
		},
		regions: []string{
			"Bayern", "Berlin", "Brandenburg", "Hessen", "Niedersachsen",
			"Nordrhein-Westfalen", "Sachsen", "Thüringen",
		},
		streetNames:     []string{"Haupt", "Schul", "Garten", "Dorf", "Bahnhof", "Berg", "Kirch", "Wald"},
		streetSuffixes:  []string{"straße", "weg", "allee", "platz", "gasse"},
		companySuffixes: []string{"GmbH", "AG", "KG", "Werke", "Gruppe"},
	},
	locale.FrFR: {
		firstNames: []string{
			"Lucas", "Emma", "Hugo", "Léa", "Louis", "Chloé", "Gabriel",
			"Manon", "Arthur", "Camille", "Jules", "Sarah", "Nathan", "Inès",
		},
		lastNames: []string{
			"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard",
			"Petit", "Durand", "Leroy", "Moreau", "Simon", "Laurent",
		},
		cities: []string{
			"Paris", "Marseille", "Lyon", "Toulouse", "Nice", "Nantes",
			"Strasbourg", "Montpellier", "Bordeaux", "Lille",
		},
		regions: []string{
			"Île-de-France", "Provence", "Bretagne", "Normandie", "Occitanie",
			"Grand Est", "Nouvelle-Aquitaine", "Auvergne",
		},
		streetNames:      []string{"de la République", "Victor Hugo", "de la Paix", "des Écoles", "du Moulin", "Pasteur"},
		streetSuffixes:   []string{"rue", "avenue", "boulevard", "place", "chemin"},
		streetTypePrefix: true,
		companySuffixes:  []string{"SARL", "SA", "SAS", "Groupe", "Industries"},
	},
	locale.EsES: {
		firstNames: []string{
			"Hugo", "Lucía", "Martín", "Sofía", "Daniel", "María", "Pablo",
			"Paula", "Alejandro", "Julia", "Álvaro", "Carla", "Adrián", "Sara",
		},
		lastNames: []string{
			"García", "Rodríguez", "González", "Fernández", "López",
			"Martínez", "Sánchez", "Pérez", "Gómez", "Martín", "Jiménez",
		},
		cities: []string{
			"Madrid", "Barcelona", "Valencia", "Sevilla", "Zaragoza",
			"Málaga", "Murcia", "Bilbao", "Alicante", "Granada",
		},
		regions: []string{
			"Andalucía", "Cataluña", "Madrid", "Valencia", "Galicia",
			"Castilla y León", "País Vasco", "Aragón",
		},
		streetNames:      []string{"Mayor", "Real", "de la Iglesia", "del Sol", "Nueva", "San Juan"},
		streetSuffixes:   []string{"Calle", "Avenida", "Plaza", "Paseo", "Camino"},
		streetTypePrefix: true,
		companySuffixes:  []string{"S.A.", "S.L.", "Grupo", "Industrias"},
	},
	locale.ItIT: {
		firstNames: []string{
			"Francesco", "Sofia", "Leonardo", "Giulia", "Alessandro", "Aurora",
			"Lorenzo", "Alice", "Mattia", "Ginevra", "Andrea", "Emma",
		},
		lastNames: []string{
			"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano",
			"Colombo", "Ricci", "Marino", "Greco", "Bruno", "Gallo",
		},
		cities: []string{
			"Roma", "Milano", "Napoli", "Torino", "Palermo", "Genova",
			"Bologna", "Firenze", "Bari", "Venezia",
		},
		regions: []string{
			"Lombardia", "Lazio", "Campania", "Sicilia", "Veneto",
			"Piemonte", "Toscana", "Puglia",
		},
		streetNames:      []string{"Roma", "Garibaldi", "Dante", "Verdi", "Marconi", "Mazzini"},
		streetSuffixes:   []string{"Via", "Corso", "Piazza", "Viale", "Vicolo"},
		streetTypePrefix: true,
		companySuffixes:  []string{"S.p.A.", "S.r.l.", "Gruppo", "Industrie"},
	},
	locale.JaJP: {
		firstNames: []string{
			"Haruto", "Yui", "Sota", "Hina", "Yuto", "Sakura", "Ren",
			"Aoi", "Kaito", "Mio", "Riku", "Rin",
		},
		lastNames: []string{
			"Sato", "Suzuki", "Takahashi", "Tanaka", "Watanabe", "Ito",
			"Yamamoto", "Nakamura", "Kobayashi", "Kato", "Yoshida", "Yamada",
		},
		cities: []string{
			"Tokyo", "Yokohama", "Osaka", "Nagoya", "Sapporo", "Fukuoka",
			"Kobe", "Kyoto", "Kawasaki", "Sendai",
		},
		regions: []string{
			"Hokkaido", "Aomori", "Tokyo", "Kanagawa", "Osaka", "Kyoto",
			"Hyogo", "Fukuoka", "Okinawa", "Aichi",
		},
	},
}

// forLocale resolves the tables for loc, backfilling missing slices from the
// en_US baseline.
func forLocale(loc locale.Locale) tables {
	t, ok := localeTables[loc]
	if !ok {
		return enUS
	}
	if t.firstNames == nil {
		t.firstNames = enUS.firstNames
	}
	if t.lastNames == nil {
		t.lastNames = enUS.lastNames
	}
	if t.cities == nil {
		t.cities = enUS.cities
	}
	if t.regions == nil {
		t.regions = enUS.regions
	}
	if t.streetNames == nil {
		t.streetNames = enUS.streetNames
	}
	if t.streetSuffixes == nil {
		t.streetSuffixes = enUS.streetSuffixes
	}
	if t.companyPrefixes == nil {
		t.companyPrefixes = enUS.companyPrefixes
	}
	if t.companySuffixes == nil {
		t.companySuffixes = enUS.companySuffixes
	}
	return t
}

var countries = []string{
	"United States", "United Kingdom", "Germany", "France", "Spain", "Italy",
	"Japan", "Canada", "Australia", "Brazil", "Mexico", "Netherlands",
	"Sweden", "Norway", "Switzerland", "Austria", "Ireland", "Portugal",
}

var colorNames = []string{
	"red", "orange", "yellow", "green", "blue", "indigo", "violet", "black",
	"white", "gray", "brown", "pink", "teal", "cyan", "magenta", "maroon",
	"navy", "olive", "silver", "gold",
}

var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
	"elit", "sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore",
	"et", "dolore", "magna", "aliqua", "enim", "ad", "minim", "veniam",
	"quis", "nostrud", "exercitation", "ullamco", "laboris", "nisi",
	"aliquip", "ex", "ea", "commodo", "consequat", "duis", "aute", "irure",
	"in", "reprehenderit", "voluptate", "velit", "esse", "cillum", "fugiat",
	"nulla", "pariatur", "excepteur", "sint", "occaecat", "cupidatat",
}

var jobTitles = []string{
	"Software Engineer", "Product Manager", "Data Analyst", "Designer",
	"Accountant", "Teacher", "Nurse", "Electrician", "Architect", "Chef",
	"Journalist", "Pharmacist", "Mechanic", "Librarian", "Surveyor",
	"Veterinarian", "Translator", "Pilot", "Economist", "Geologist",
}

var catchAdjectives = []string{
	"Adaptive", "Seamless", "Robust", "Scalable", "Intuitive", "Dynamic",
	"Integrated", "Streamlined", "Proactive", "Versatile", "Resilient",
}

var catchNouns = []string{
	"synergy", "architecture", "platform", "paradigm", "framework",
	"infrastructure", "workflow", "ecosystem", "interface", "pipeline",
}

func pick(src *rng.Source, list []string) string {
	return list[src.IntN(len(list))]
}
