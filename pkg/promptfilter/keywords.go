package promptfilter

// Keyword lists are matched as lowercase substrings of the trimmed message,
// except questionWordPattern which requires word boundaries.

var academicKeywords = []string{
	"study", "learn", "explain", "understand", "concept", "theory",
	"formula", "equation", "derivative", "integral", "theorem", "proof",
	"definition", "example", "exercise", "problem", "solve", "solution",
	"homework", "assignment", "exam", "syllabus", "lecture", "chapter",
	"topic", "subject", "notes", "question paper", "semester", "course",
	"difference between", "compare", "calculate", "analyze", "summarize",
}

var subjectNames = []string{
	"mathematics", "maths", "math", "physics", "chemistry", "biology",
	"computer science", "programming", "algorithms", "data structures",
	"operating systems", "databases", "networking", "electronics",
	"mechanics", "thermodynamics", "calculus", "algebra", "geometry",
	"statistics", "probability", "economics", "accounting", "history",
	"geography", "literature", "grammar", "engineering",
}

var nonAcademicKeywords = []string{
	"weather", "movie", "film", "celebrity", "gossip", "cricket score",
	"football score", "lottery", "betting", "dating", "recipe", "cooking",
	"horoscope", "astrology", "shopping", "fashion", "stock tip",
	"joke", "meme", "song lyrics", "video game",
}

var denyKeywords = []string{
	"answers to the exam", "leaked paper", "leak the exam", "exam answers for",
	"write my exam", "take my exam", "impersonate",
	"how to cheat", "help me cheat", "cheat on",
	"make a bomb", "build a weapon", "hurt someone", "kill",
	"hack into", "steal", "drugs", "suicide",
	"hate speech", "racial slur",
}

var academicPatterns = []string{
	`(?i)how (do|does|can|to) (i |we |you )?(solve|derive|calculate|prove|find|integrate|differentiate)`,
	`(?i)what is the (difference|formula|definition|derivative|integral) `,
	`(?i)explain (the|how|why)`,
	`(?i)(prove|derive) (that|the)`,
	`(?i)(solve|calculate|evaluate|simplify) (the|this|for)`,
	`(?i)help me (understand|with|learn|prepare)`,
}

const questionWordPattern = `(?i)\b(what|how|why|when|where|which|who)\b`
