package worldbuilder

type nameTable struct {
	male     []string
	female   []string
	surnames []string
	towns    []string
}

var nameTables = map[Origin]nameTable{
	OriginBritish: {
		male: []string{
			"Arthur", "Albert", "Cyril", "Dennis", "Douglas", "Eric",
			"Frank", "George", "Harold", "Jack", "Kenneth", "Leslie",
			"Norman", "Reginald", "Ronald", "Stanley", "Walter", "William",
		},
		female: []string{
			"Betty", "Doris", "Edna", "Eileen", "Joan", "Joyce",
			"Kathleen", "Margaret", "Mary", "Peggy", "Phyllis", "Vera",
		},
		surnames: []string{
			"Atkinson", "Baker", "Clarke", "Davies", "Evans", "Fletcher",
			"Gibson", "Harris", "Hughes", "Jones", "Mitchell", "Palmer",
			"Roberts", "Shaw", "Thompson", "Walker", "Wright", "Young",
		},
		towns: []string{
			"Lichfield", "Birmingham", "Coventry", "Leeds", "Bristol",
			"Glasgow", "Cardiff", "Norwich", "Belfast", "Manchester",
		},
	},
	OriginCaribbean: {
		male: []string{
			"Cy", "Errol", "Lincoln", "Dudley", "Ulric", "Vivian",
			"Carl", "Philip", "Neville", "Sam",
		},
		female: []string{
			"Lilian", "Norma", "Connie", "Louise", "Hyacinth", "Una",
		},
		surnames: []string{
			"Grant", "Campbell", "Thomas", "Joseph", "Williams", "Brown",
			"Henry", "Cross", "King", "Lawrence",
		},
		towns: []string{
			"Kingston", "Port of Spain", "Bridgetown", "Georgetown", "Castries",
		},
	},
	OriginChinese: {
		male: []string{
			"Wei", "Ming", "Hong", "Kai", "Jun", "Lian", "Bo", "Chen",
		},
		female: []string{
			"Mei", "Lan", "Hua", "Xiu", "Ying", "Lin",
		},
		surnames: []string{
			"Chan", "Wong", "Lee", "Cheung", "Lau", "Ho", "Ng", "Yip",
		},
		towns: []string{
			"Hong Kong", "Liverpool", "Singapore", "Penang", "Limehouse",
		},
	},
	OriginMiddleEastern: {
		male: []string{
			"Ahmed", "Karim", "Youssef", "Omar", "Nabil", "Sami", "Fadi",
		},
		female: []string{
			"Leila", "Nadia", "Samira", "Yasmin", "Huda",
		},
		surnames: []string{
			"Haddad", "Khoury", "Nassar", "Saleh", "Aziz", "Mansour",
		},
		towns: []string{
			"Alexandria", "Beirut", "Haifa", "Baghdad", "Cairo",
		},
	},
	OriginSpanish: {
		male: []string{
			"Carlos", "Juan", "Manuel", "Luis", "Pedro", "Ramon", "Tomas",
		},
		female: []string{
			"Carmen", "Dolores", "Isabel", "Lucia", "Rosa", "Teresa",
		},
		surnames: []string{
			"Garcia", "Martinez", "Lopez", "Sanchez", "Romero", "Torres",
		},
		towns: []string{
			"Gibraltar", "Buenos Aires", "Valparaiso", "Montevideo", "Havana",
		},
	},
}

var nicknames = []string{
	"Dusty", "Nobby", "Chalky", "Ginger", "Tubby", "Lofty", "Smudge",
	"Taffy", "Jock", "Paddy", "Spud", "Sparks", "Tiny", "Curly",
	"Bunny", "Pip", "Chiefy", "Shorty", "Lucky", "Skip",
}
