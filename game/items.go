package game

// ItemType enumerates everything that can fall down the play field.
type ItemType uint8

const (
	ItemPopcorn ItemType = iota
	ItemTicket
	ItemCola
	ItemFilmroll
	ItemBomb

	itemTypeCount
)

func (t ItemType) String() string {
	switch t {
	case ItemPopcorn:
		return "popcorn"
	case ItemTicket:
		return "ticket"
	case ItemCola:
		return "cola"
	case ItemFilmroll:
		return "filmroll"
	case ItemBomb:
		return "bomb"
	}
	return "unknown"
}

// ItemConfig is the immutable per-type tuning record.
type ItemConfig struct {
	Type            ItemType
	Name            string
	Emoji           string
	Score           int    // negative for obstacles
	Color           uint32 // 0xRRGGBB, for renderers without sprite assets
	Size            float64
	SpeedMultiplier float64 // light=0.8, medium=1.0, heavy=1.2
}

// Indexed by ItemType ordinal.
var itemConfigs = [itemTypeCount]ItemConfig{
	ItemPopcorn:  {ItemPopcorn, "popcorn", "🍿", 10, 0xFFFFCC, 65, 0.8},
	ItemTicket:   {ItemTicket, "ticket", "🎫", 25, 0xFF6B35, 70, 1.0},
	ItemCola:     {ItemCola, "cola", "🥤", 50, 0xFF0000, 75, 1.2},
	ItemFilmroll: {ItemFilmroll, "filmroll", "🎞️", 100, 0xFFD700, 85, 1.2},
	ItemBomb:     {ItemBomb, "bomb", "💣", -30, 0xFF0000, 70, 1.0},
}

// ItemConfigFor returns the tuning record for t. An out-of-range type is a
// programming error; rather than stall a frame it falls back to popcorn.
func ItemConfigFor(t ItemType) ItemConfig {
	if t >= itemTypeCount {
		return itemConfigs[ItemPopcorn]
	}
	return itemConfigs[t]
}

type SpawnWeight struct {
	Type   ItemType
	Weight int
}

// spawnWeights must sum to 100. The order here is the walk order of the
// spawner's cumulative pick.
var spawnWeights = [...]SpawnWeight{
	{ItemPopcorn, 40},
	{ItemTicket, 22},
	{ItemCola, 15},
	{ItemFilmroll, 15},
	{ItemBomb, 8},
}

// SpawnWeights returns the weight table in pick order.
func SpawnWeights() []SpawnWeight {
	return spawnWeights[:]
}
