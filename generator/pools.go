package generator

// Topics is the fixed topic pool. Order matters: the daily draw indexes into it.
var Topics = []string{
	"MASTERCHEF AUSTRALIA",
	"morning coffee rituals",
	"weekend productivity hacks",
	"remote work funny moments",
	"networking fails and wins",
	"Monday motivation myths",
	"office lunch drama",
	"elevator pitch disasters",
	"work from home pets",
	"meeting mute button fails",
	"career change stories",
	"LinkedIn connection etiquette",
	"interview weird questions",
	"workplace technology fails",
	"team building activities gone wrong",
	"procrastination as an art form",
	"email signature psychology",
	"virtual background mishaps",
	"workplace coffee politics",
	"Friday afternoon energy crashes",
	"startup life reality vs expectation",
	"corporate buzzword bingo",
	"work-life balance myths",
	"the psychology of deadlines",
	"office plant parenthood",
}

// Tones is the fixed tone pool.
var Tones = []string{"funny", "sarcastic", "enthusiastic", "witty", "relatable", "observational"}
