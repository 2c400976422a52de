package config

import "time"

// Balance holds the scheduler's tunable knobs.
type Balance struct {
	// Tick pacing
	TickInterval    time.Duration `yaml:"tick_interval" json:"tick_interval" env:"PQ_TICK_INTERVAL"`
	MaxTickMultiple int           `yaml:"max_tick_multiple" json:"max_tick_multiple" env:"PQ_MAX_TICK_MULTIPLE"`

	// Closest-of-N windows
	MonsterCandidates     int `yaml:"monster_candidates" json:"monster_candidates" env:"PQ_MONSTER_CANDIDATES"`
	EquipmentCandidates   int `yaml:"equipment_candidates" json:"equipment_candidates" env:"PQ_EQUIPMENT_CANDIDATES"`
	ExterminateCandidates int `yaml:"exterminate_candidates" json:"exterminate_candidates" env:"PQ_EXTERMINATE_CANDIDATES"`
	PlacateCandidates     int `yaml:"placate_candidates" json:"placate_candidates" env:"PQ_PLACATE_CANDIDATES"`
	NemesisCandidates     int `yaml:"nemesis_candidates" json:"nemesis_candidates" env:"PQ_NEMESIS_CANDIDATES"`

	// Combat duration bounds
	MinCombat time.Duration `yaml:"min_combat" json:"min_combat" env:"PQ_MIN_COMBAT"`
	MaxCombat time.Duration `yaml:"max_combat" json:"max_combat" env:"PQ_MAX_COMBAT"`

	// Errands
	MarketTrip  time.Duration `yaml:"market_trip" json:"market_trip" env:"PQ_MARKET_TRIP"`
	SellTime    time.Duration `yaml:"sell_time" json:"sell_time" env:"PQ_SELL_TIME"`
	BuyTime     time.Duration `yaml:"buy_time" json:"buy_time" env:"PQ_BUY_TIME"`
	HeadingTrip time.Duration `yaml:"heading_trip" json:"heading_trip" env:"PQ_HEADING_TRIP"`

	// Shopping: buy when gold allows and BuyChance in BuyOutOf hits
	BuyChance int `yaml:"buy_chance" json:"buy_chance" env:"PQ_BUY_CHANCE"`
	BuyOutOf  int `yaml:"buy_out_of" json:"buy_out_of" env:"PQ_BUY_OUT_OF"`
}

// Default returns the default balance configuration
func Default() Balance {
	return Balance{
		TickInterval:          50 * time.Millisecond,
		MaxTickMultiple:       4,
		MonsterCandidates:     6,
		EquipmentCandidates:   6,
		ExterminateCandidates: 4,
		PlacateCandidates:     2,
		NemesisCandidates:     5,
		MinCombat:             500 * time.Millisecond,
		MaxCombat:             60 * time.Second,
		MarketTrip:            4 * time.Second,
		SellTime:              time.Second,
		BuyTime:               5 * time.Second,
		HeadingTrip:           4 * time.Second,
		BuyChance:             1,
		BuyOutOf:              2,
	}
}

// Brisk shortens errands and always shops when it can afford to.
func Brisk() Balance {
	cfg := Default()
	cfg.MaxTickMultiple = 8
	cfg.MarketTrip = 2 * time.Second
	cfg.HeadingTrip = 2 * time.Second
	cfg.BuyChance = 1
	cfg.BuyOutOf = 1
	return cfg
}

// Leisurely lets the hero dawdle and hoard.
func Leisurely() Balance {
	cfg := Default()
	cfg.MaxTickMultiple = 2
	cfg.MarketTrip = 6 * time.Second
	cfg.HeadingTrip = 6 * time.Second
	cfg.BuyChance = 1
	cfg.BuyOutOf = 4
	return cfg
}

// Preset returns the named balance; unknown names fall back to Default.
func Preset(name string) Balance {
	switch name {
	case "brisk":
		return Brisk()
	case "leisurely":
		return Leisurely()
	default:
		return Default()
	}
}

// MaxTick is the longest elapsed time a single tick may account for.
func (b Balance) MaxTick() time.Duration {
	return time.Duration(b.MaxTickMultiple) * b.TickInterval
}

// ApplyDefaults fills unset knobs from Default.
func (b *Balance) ApplyDefaults() {
	d := Default()
	if b.TickInterval <= 0 {
		b.TickInterval = d.TickInterval
	}
	if b.MaxTickMultiple <= 0 {
		b.MaxTickMultiple = d.MaxTickMultiple
	}
	if b.MonsterCandidates <= 0 {
		b.MonsterCandidates = d.MonsterCandidates
	}
	if b.EquipmentCandidates <= 0 {
		b.EquipmentCandidates = d.EquipmentCandidates
	}
	if b.ExterminateCandidates <= 0 {
		b.ExterminateCandidates = d.ExterminateCandidates
	}
	if b.PlacateCandidates <= 0 {
		b.PlacateCandidates = d.PlacateCandidates
	}
	if b.NemesisCandidates <= 0 {
		b.NemesisCandidates = d.NemesisCandidates
	}
	if b.MinCombat <= 0 {
		b.MinCombat = d.MinCombat
	}
	if b.MaxCombat < b.MinCombat {
		b.MaxCombat = max(d.MaxCombat, b.MinCombat)
	}
	if b.MarketTrip <= 0 {
		b.MarketTrip = d.MarketTrip
	}
	if b.SellTime <= 0 {
		b.SellTime = d.SellTime
	}
	if b.BuyTime <= 0 {
		b.BuyTime = d.BuyTime
	}
	if b.HeadingTrip <= 0 {
		b.HeadingTrip = d.HeadingTrip
	}
	if b.BuyOutOf <= 0 {
		b.BuyChance, b.BuyOutOf = d.BuyChance, d.BuyOutOf
	}
}
