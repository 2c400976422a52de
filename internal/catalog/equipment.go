package catalog

// Weapons fill the Weapon slot and take offense modifiers.
var Weapons = []Gear{
	{"Stick", 0}, {"Broken Bottle", 1}, {"Shiv", 1}, {"Sprig", 1},
	{"Oxgoad", 1}, {"Eelspear", 2}, {"Bowie Knife", 2}, {"Claw Hammer", 2},
	{"Handpeen", 2}, {"Andiron", 3}, {"Hatchet", 3}, {"Tomahawk", 3},
	{"Hackbarm", 3}, {"Crowbar", 4}, {"Mace", 4}, {"Battleadze", 4},
	{"Leafmace", 5}, {"Shortsword", 5}, {"Longiron", 5}, {"Poachard", 5},
	{"Baselard", 5}, {"Whinyard", 6}, {"Blunderbuss", 6}, {"Longsword", 6},
	{"Crankbow", 6}, {"Blibo", 7}, {"Broadsword", 7}, {"Kreen", 7},
	{"Warhammer", 7}, {"Morning Star", 8}, {"Pole-adze", 8}, {"Spontoon", 8},
	{"Bastard Sword", 9}, {"Peen-arm", 9}, {"Culverin", 10}, {"Lance", 10},
	{"Halberd", 11}, {"Poleax", 12}, {"Bandyclef", 15},
}

var Shields = []Gear{
	{"Parasol", 0}, {"Pie Plate", 1}, {"Garbage Can Lid", 2}, {"Buckler", 3},
	{"Plexiglass", 4}, {"Fender", 4}, {"Round Shield", 5}, {"Carapace", 5},
	{"Scutum", 6}, {"Propugner", 6}, {"Kite Shield", 7}, {"Pavise", 8},
	{"Tower Shield", 9}, {"Baroque Shield", 11}, {"Aegis", 12},
	{"Magnetic Field", 18},
}

// Armors fill every slot after Shield.
var Armors = []Gear{
	{"Lace", 1}, {"Macrame", 2}, {"Burlap", 3}, {"Canvas", 4}, {"Flannel", 5},
	{"Chamois", 6}, {"Pleathers", 7}, {"Leathers", 8}, {"Bearskin", 9},
	{"Ringmail", 10}, {"Scale Mail", 12}, {"Chainmail", 14},
	{"Splint Mail", 15}, {"Platemail", 16}, {"ABS", 17}, {"Kevlar", 18},
	{"Titanium", 19}, {"Mithril Mail", 20}, {"Diamond Mail", 25},
	{"Plasma", 30},
}

var OffenseAttrib = []Modifier{
	{"Polished", 1}, {"Serrated", 1}, {"Heavy", 1}, {"Pronged", 2},
	{"Steely", 2}, {"Vicious", 3}, {"Venomed", 4}, {"Stabbity", 4},
	{"Dancing", 5}, {"Invisible", 6}, {"Vorpal", 7},
}

var DefenseAttrib = []Modifier{
	{"Studded", 1}, {"Banded", 2}, {"Gilded", 2}, {"Festooned", 3},
	{"Holy", 4}, {"Cambric", 1}, {"Fine", 4}, {"Impressive", 5},
	{"Custom", 3},
}

var OffenseBad = []Modifier{
	{"Dull", -2}, {"Tarnished", -1}, {"Rusty", -3}, {"Padded", -5},
	{"Bent", -4}, {"Mini", -4}, {"Rubber", -6}, {"Nerf", -7},
	{"Unbalanced", -2},
}

var DefenseBad = []Modifier{
	{"Holey", -1}, {"Patched", -1}, {"Threadbare", -2}, {"Faded", -1},
	{"Rusty", -3}, {"Motheaten", -3}, {"Mildewed", -2}, {"Torn", -3},
	{"Dented", -3}, {"Cursed", -5}, {"Plastic", -4}, {"Cracked", -4},
	{"Warped", -3}, {"Corroded", -3},
}
