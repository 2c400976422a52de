package catalog

var Races = []Heritage{
	{"Half Orc", []Stat{HPMax}},
	{"Half Man", []Stat{CHA}},
	{"Half Halfling", []Stat{DEX}},
	{"Double Hobbit", []Stat{STR}},
	{"Hob-Hobbit", []Stat{DEX, CON}},
	{"Low Elf", []Stat{CON}},
	{"Dung Elf", []Stat{WIS}},
	{"Talking Pony", []Stat{MPMax, INT}},
	{"Gyrognome", []Stat{DEX}},
	{"Lesser Dwarf", []Stat{CON}},
	{"Crested Dwarf", []Stat{CHA}},
	{"Eel Man", []Stat{DEX}},
	{"Panda Man", []Stat{CON, STR}},
	{"Trans-Kobold", []Stat{WIS}},
	{"Enchanted Motorcycle", []Stat{MPMax}},
	{"Will o' the Wisp", []Stat{WIS}},
	{"Battle-Finch", []Stat{DEX, INT}},
	{"Double Wookiee", []Stat{STR}},
	{"Skraeling", []Stat{WIS}},
	{"Demicanadian", []Stat{CON}},
	{"Land Squid", []Stat{STR, HPMax}},
}

var Classes = []Heritage{
	{"Ur-Paladin", []Stat{WIS, CON}},
	{"Voodoo Princess", []Stat{INT, CHA}},
	{"Robot Monk", []Stat{STR}},
	{"Mu-Fu Monk", []Stat{DEX}},
	{"Mage Illusioner", []Stat{INT, MPMax}},
	{"Shiv-Knight", []Stat{DEX}},
	{"Inner Mason", []Stat{CON}},
	{"Fighter/Organist", []Stat{CHA, STR}},
	{"Puma Burgular", []Stat{DEX}},
	{"Runeloremaster", []Stat{WIS}},
	{"Hunter Strangler", []Stat{DEX, INT}},
	{"Battle-Felon", []Stat{STR}},
	{"Tickle-Mimic", []Stat{WIS, INT}},
	{"Slow Poisoner", []Stat{CON}},
	{"Bastard Lunatic", []Stat{CON}},
	{"Lowling", []Stat{WIS}},
	{"Birdrider", []Stat{WIS}},
	{"Vermineer", []Stat{INT}},
}

var Titles = []string{
	"Mr.", "Mrs.", "Sir", "Sgt.", "Ms.", "Captain", "Chief", "Admiral",
	"Saint",
}

var ImpressiveTitles = []string{
	"King", "Queen", "Lord", "Lady", "Viceroy", "Mayor", "Prince", "Princess",
	"Chief", "Boss", "Archbishop", "Chancellor", "Baroness", "Inquistor",
}

// NameParts are the lead-consonant, vowel and trail-consonant tables the
// name generator cycles through. Empty strings are deliberate.
var NameParts = [3][]string{
	{
		"br", "cr", "dr", "fr", "gr", "j", "kr", "l", "m", "n", "pr", "", "", "",
		"r", "sh", "tr", "v", "wh", "x", "y", "z",
	},
	{
		"a", "a", "e", "e", "i", "i", "o", "o", "u", "u", "ae", "ie", "oo", "ou",
	},
	{
		"b", "ck", "d", "g", "k", "m", "n", "p", "t", "v", "x", "z",
	},
}
