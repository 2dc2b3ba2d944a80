package pipeline

// City to region mapping for Germany, Austria and Switzerland. English
// spellings are listed alongside the local ones where common.
var cityRegions = map[string]string{
	// Deutschland
	"berlin":                "Berlin",
	"hamburg":               "Hamburg",
	"münchen":               "Bayern",
	"munich":                "Bayern",
	"köln":                  "Nordrhein-Westfalen",
	"cologne":               "Nordrhein-Westfalen",
	"frankfurt":             "Hessen",
	"frankfurt am main":     "Hessen",
	"stuttgart":             "Baden-Württemberg",
	"düsseldorf":            "Nordrhein-Westfalen",
	"dortmund":              "Nordrhein-Westfalen",
	"essen":                 "Nordrhein-Westfalen",
	"leipzig":               "Sachsen",
	"bremen":                "Bremen",
	"dresden":               "Sachsen",
	"hannover":              "Niedersachsen",
	"nürnberg":              "Bayern",
	"duisburg":              "Nordrhein-Westfalen",
	"bochum":                "Nordrhein-Westfalen",
	"wuppertal":             "Nordrhein-Westfalen",
	"bielefeld":             "Nordrhein-Westfalen",
	"bonn":                  "Nordrhein-Westfalen",
	"münster":               "Nordrhein-Westfalen",
	"mannheim":              "Baden-Württemberg",
	"karlsruhe":             "Baden-Württemberg",
	"augsburg":              "Bayern",
	"wiesbaden":             "Hessen",
	"gelsenkirchen":         "Nordrhein-Westfalen",
	"mönchengladbach":       "Nordrhein-Westfalen",
	"aachen":                "Nordrhein-Westfalen",
	"braunschweig":          "Niedersachsen",
	"chemnitz":              "Sachsen",
	"kiel":                  "Schleswig-Holstein",
	"halle":                 "Sachsen-Anhalt",
	"magdeburg":             "Sachsen-Anhalt",
	"freiburg im breisgau":  "Baden-Württemberg",
	"krefeld":               "Nordrhein-Westfalen",
	"oberhausen":            "Nordrhein-Westfalen",
	"lübeck":                "Schleswig-Holstein",
	"erfurt":                "Thüringen",
	"rostock":               "Mecklenburg-Vorpommern",
	"mainz":                 "Rheinland-Pfalz",
	"kassel":                "Hessen",
	"hagen":                 "Nordrhein-Westfalen",
	"potsdam":               "Brandenburg",
	"saarbrücken":           "Saarland",
	"hamm":                  "Nordrhein-Westfalen",
	"mülheim":               "Nordrhein-Westfalen",
	"ludwigshafen":          "Rheinland-Pfalz",
	"oldenburg":             "Niedersachsen",
	"osnabrück":             "Niedersachsen",
	"leverkusen":            "Nordrhein-Westfalen",
	"darmstadt":             "Hessen",
	"heidelberg":            "Baden-Württemberg",
	"solingen":              "Nordrhein-Westfalen",
	"herne":                 "Nordrhein-Westfalen",
	"neuss":                 "Nordrhein-Westfalen",
	"regensburg":            "Bayern",
	"ingolstadt":            "Bayern",
	"würzburg":              "Bayern",
	"wolfsburg":             "Niedersachsen",
	"ulm":                   "Baden-Württemberg",
	"göttingen":             "Niedersachsen",
	"pforzheim":             "Baden-Württemberg",
	"offenbach":             "Hessen",
	"bottrop":               "Nordrhein-Westfalen",
	"bremerhaven":           "Bremen",
	"recklinghausen":        "Nordrhein-Westfalen",
	"remscheid":             "Nordrhein-Westfalen",
	"fürth":                 "Bayern",
	"trier":                 "Rheinland-Pfalz",
	"koblenz":               "Rheinland-Pfalz",
	"erlangen":              "Bayern",
	"moers":                 "Nordrhein-Westfalen",
	"siegen":                "Nordrhein-Westfalen",
	"hildesheim":            "Niedersachsen",
	"jena":                  "Thüringen",

	// Österreich
	"wien":            "Wien",
	"vienna":          "Wien",
	"graz":            "Steiermark",
	"linz":            "Oberösterreich",
	"salzburg":        "Salzburg",
	"innsbruck":       "Tirol",
	"klagenfurt":      "Kärnten",
	"villach":         "Kärnten",
	"wels":            "Oberösterreich",
	"st. pölten":      "Niederösterreich",
	"dornbirn":        "Vorarlberg",
	"wiener neustadt": "Niederösterreich",
	"steyr":           "Oberösterreich",
	"feldkirch":       "Vorarlberg",
	"bregenz":         "Vorarlberg",
	"leonding":        "Oberösterreich",
	"leoben":          "Steiermark",
	"amstetten":       "Niederösterreich",

	// Schweiz
	"zürich":            "Zürich",
	"genf":              "Genf",
	"genève":            "Genf",
	"basel":             "Basel-Stadt",
	"bern":              "Bern",
	"lausanne":          "Waadt",
	"winterthur":        "Zürich",
	"luzern":            "Luzern",
	"st. gallen":        "St. Gallen",
	"biel":              "Bern",
	"thun":              "Bern",
	"köniz":             "Bern",
	"la chaux-de-fonds": "Neuenburg",
	"schaffhausen":      "Schaffhausen",
	// "freiburg" without qualifier refers to the Swiss city; the German
	// one is listed as "freiburg im breisgau".
	"fribourg": "Freiburg",
	"freiburg": "Freiburg",
	"chur":     "Graubünden",
	"vernier":  "Genf",
	"uster":    "Zürich",
	"sion":     "Wallis",
	"neuchâtel": "Neuenburg",
	"lugano":   "Tessin",
	"zug":      "Zug",
	"aarau":    "Aargau",
	"emmen":    "Luzern",
}
