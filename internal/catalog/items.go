package catalog

// Spells are ordered roughly by power; grants favour the front.
var Spells = []string{
	"Slime Finger", "Rabbit Punch", "Hastiness", "Good Move", "Sadness",
	"Seasick", "Shoelaces", "Inoculate", "Cone of Annoyance", "Magnetic Orb",
	"Invisible Hands", "Revolting Cloud", "Aqueous Humor", "Spectral Miasma",
	"Clever Fellow", "Lockjaw", "History Lesson", "Hydrophobia", "Big Sister",
	"Cone of Paste", "Mulligan", "Nestor's Bright Idea", "Holy Batpole",
	"Tumor (Benign)", "Braingate", "Summon a Bitch", "Nonplus",
	"Animate Nightstand", "Eye of the Troglodyte", "Curse Name", "Dropsy",
	"Vitreous Humor", "Roger's Grand Illusion", "Covet", "Black Idaho",
	"Astral Miasma", "Spectral Oyster", "Acrid Hands", "Angioplasty",
	"Grognor's Big Day Off", "Tumor (Malignant)", "Animate Tunic",
	"Ursine Armor", "Holy Roller", "Tonsillectomy", "Curse Family",
	"Infinite Confusion",
}

var Specials = []string{
	"Diadem", "Festoon", "Gemstone", "Phial", "Tiara", "Scabbard", "Arrow",
	"Lens", "Lamp", "Hymnal", "Fleece", "Laurel", "Brooch", "Gimlet",
	"Cobble", "Albatross", "Brazier", "Bandolier", "Tome", "Garnet",
	"Amethyst", "Candelabra", "Corset", "Sphere", "Sceptre", "Ankh",
	"Talisman", "Orb", "Gammel", "Ornament", "Brocade", "Galoon", "Bijou",
	"Spangle", "Gimcrack", "Hood", "Vulpeculum",
}

var ItemAttrib = []string{
	"Golden", "Gilded", "Spectral", "Astral", "Garlanded", "Precious",
	"Crafted", "Dual", "Filigreed", "Cruciate", "Arcane", "Blessed",
	"Reverential", "Lucky", "Enchanted", "Gleaming", "Grandiose", "Sacred",
	"Legendary", "Mythic", "Crystalline", "Austere", "Ostentatious",
	"One True", "Proverbial", "Fearsome", "Deadly", "Benevolent", "Unearthly",
	"Magnificent", "Iron", "Ormolu", "Puissant",
}

var ItemOfs = []string{
	"Foreboding", "Foreshadowing", "Nervousness", "Happiness", "Torpor",
	"Danger", "Craft", "Silence", "Invisibility", "Rapidity", "Pleasure",
	"Practicality", "Hurting", "Joy", "Petulance", "Intrusion", "Chaos",
	"Suffering", "Extroversion", "Frenzy", "Sisu", "Solitude", "Punctuality",
	"Efficiency", "Comfort", "Patience", "Internment", "Incarceration",
	"Misapprehension", "Loyalty", "Envy", "Acrimony", "Worry", "Fear", "Awe",
	"Guile", "Prurience", "Fortune", "Perspicacity", "Domination",
	"Submission", "Fealty", "Hunger", "Despair", "Cruelty", "Grob", "Dignard",
	"Ra", "the Bone", "Diamonique", "Electrum", "Hydragyrum",
}

var BoringItems = []string{
	"nail", "lunchpail", "sock", "I.O.U.", "cookie", "pint", "toothpick",
	"writ", "newspaper", "letter", "plank", "hat", "egg", "coin", "needle",
	"bucket", "ladder", "chicken", "twig", "dirtclod", "counterpane", "vest",
	"teratoma", "bunny", "rock", "pole", "carrot", "canoe", "inkwell", "hoe",
	"bandage", "trowel", "towel", "planter box", "anvil", "axle", "tuppence",
	"casket", "nosegay", "trinket", "credenza", "writ",
}
