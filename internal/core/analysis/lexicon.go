package analysis

// albumIndicators mark long-form compilations and full albums that radio mode
// must never queue.
var albumIndicators = []string{
	"full album", "complete album", "entire album",
	"album mix", "full mixtape", "complete mixtape",
	"compilation", "greatest hits", "best of",
	"all songs", "all tracks", "discography",
	"album playlist", "complete collection",
	"mix 20", "power mix", "party mix", "edm mix",
	"dj mix", "remix compilation", "remix pack",
	"megamix", "mixtape", "nonstop", "continuous mix",
	"year mix", "summer mix", "winter mix", "spring mix", "fall mix",
}

// nonMusicIndicators strongly suggest commentary or video content.
var nonMusicIndicators = []string{
	"reaction", "reacts", "react to", "reacting",
	"interview", "interviewing", "speaks to", "conversation",
	"explains", "review", "reviews", "reviewing",
	"breakdown", "breaks down", "analysis",
	"talking about", "discusses", "discussing",
	"performed live", "performance at", "performs at",
	"first time hearing", "first listen", "reaction to",
	"behind the scenes", "making of", "studio session",
	"recap", "highlights", "best moments", "tutorial", "how to",
}

// musicIndicators are weak positive signals.
var musicIndicators = []string{
	"official audio", "official music", "official video",
	"lyrics", "audio", "explicit", "clean version",
	"ft.", "feat.", "remix", "prod. by", "prod by",
}

// durationIndicators flag long-form content by advertised length.
var durationIndicators = []string{
	"hour", "1h", "2h", "3h", "4h", "5h", "6h",
	"min mix", "minute mix", "hour mix",
	"extended mix", "marathon",
}

// conjunctionMarkers count distinct-artist references; more than two reads as
// a compilation lineup. Longest-first so overlapping markers ("featuring"
// contains "feat") count once per occurrence.
var conjunctionMarkers = []string{"featuring", "feat.", "feat", "ft.", " & ", " and ", " x ", " vs "}

// artistGenres maps well-known artist name fragments to a genre.
var artistGenres = map[string][]string{
	"hip hop":    {"kendrick", "drake", "j cole", "dababy", "jay-z", "kanye", "travis scott", "eminem"},
	"pop":        {"taylor swift", "ariana", "justin", "ed sheeran", "billie eilish", "adele", "sia"},
	"rock":       {"metallica", "iron maiden", "slayer", "nirvana", "foo fighters", "green day"},
	"electronic": {"avicii", "deadmau5", "skrillex", "tiesto", "martin garrix", "calvin harris"},
}

// labelGenres maps record labels and channel brands to a genre.
var labelGenres = map[string]string{
	"monstercat":       "electronic",
	"owsla":            "electronic",
	"mad decent":       "electronic",
	"spinnin":          "electronic",
	"anjuna":           "electronic",
	"hospital records": "electronic",
	"ninja tune":       "electronic",
	"warp":             "electronic",
	"ovo":              "hip hop",
	"def jam":          "hip hop",
	"aftermath":        "hip hop",
	"top dawg":         "hip hop",
	"ysl":              "hip hop",
	"fueled by ramen":  "rock",
	"epitaph":          "rock",
	"roadrunner":       "rock",
}

// genreTerms is the last-resort flat scan when nothing else matched.
var genreTerms = []string{
	"hip hop", "rap", "pop", "rock", "metal", "edm", "electronic",
	"r&b", "country", "jazz", "classical", "reggae", "latin",
	"house", "techno", "dubstep", "trap", "folk", "indie",
}

// genreRemap folds loose terms onto canonical top-level genres.
var genreRemap = map[string]string{
	"rap":     "hip hop",
	"trap":    "hip hop",
	"house":   "electronic",
	"techno":  "electronic",
	"dubstep": "electronic",
	"edm":     "electronic",
	"metal":   "rock",
	"indie":   "rock",
	"folk":    "country",
}
