package buff

// Stable buff type keys
const (
	TypeNameHungerDrain    = "hunger_drain"
	TypeNameHappinessDrain = "happiness_drain"
	TypeNameEnergyDrain    = "energy_drain"
	TypeNameCoinBonus      = "coin_bonus"
)
