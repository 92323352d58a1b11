package title

// boilerplate substrings stripped before any comparison. Order matters:
// bracketed variants are listed before the bare phrase so the bare pass does
// not leave orphaned brackets behind.
var boilerplate = []string{
	"[official music video]", "[official video]", "[music video]", "[official audio]", "[audio]", "[lyrics]",
	"(official music video)", "(official video)", "(music video)", "(official audio)", "(audio)", "(lyrics)",
	"| official music video", "| official video", "| music video", "| audio", "| lyrics",
	"official music video", "official video", "music video", "official audio", "audio only", "lyrics",
	"[release]", "(release)", "| release",
	"[hd]", "(hd)", "| hd",
	"[4k]", "(4k)", "| 4k",
	"[bass boosted]", "(bass boosted)", "| bass boosted", "bass boosted",
	"[extended]", "(extended)", "| extended",
	"[remix]", "(remix)", "| remix",
	"[edit]", "(edit)", "| edit",
}

// featuringMarkers introduce guest artists in a title.
var featuringMarkers = []string{"feat.", "ft.", "featuring"}

// genreLexicon maps a top-level genre to its whole-word synonyms and
// subgenres. Subgenre hits fold up to the parent in detection results.
var genreLexicon = map[string][]string{
	"hip hop":    {"hip hop", "hiphop", "rap", "trap", "drill", "boom bap"},
	"pop":        {"pop", "top 40", "chart topping"},
	"rock":       {"rock", "alternative", "indie rock", "punk", "metal", "hard rock"},
	"electronic": {"electronic", "edm", "dubstep", "house", "techno", "trance", "dnb", "drum and bass"},
	"r&b":        {"r&b", "rnb", "soul", "rhythm and blues"},
	"country":    {"country", "folk", "americana", "bluegrass"},
	"jazz":       {"jazz", "blues", "swing", "bebop"},
	"classical":  {"classical", "orchestra", "symphony", "chamber music"},
	"reggae":     {"reggae", "dancehall", "ska", "dub"},
	"latin":      {"latin", "salsa", "reggaeton", "bachata", "cumbia"},
}

// moodLexicon keywords are matched as substrings, not whole words: a title
// like "Upbeat Mix" or "chillout" should still register.
var moodLexicon = map[string][]string{
	"energetic": {"energetic", "upbeat", "workout", "party", "hype"},
	"relaxing":  {"relaxing", "chill", "calm", "sleep", "downtempo"},
	"happy":     {"happy", "feel good", "uplifting", "positive"},
	"sad":       {"sad", "emotional", "melancholic", "heartbreak"},
	"romantic":  {"romantic", "love song", "ballad"},
	"dark":      {"dark", "intense", "aggressive", "sinister"},
	"focus":     {"focus", "concentration", "study", "ambient"},
}
