package items

const (
	IDHealthPotion = "health_potion"
	IDSwiftBoots   = "swift_boots"
)

func init() {
	Register(ItemDefinition{
		ID:          IDHealthPotion,
		Name:        "Health Potion",
		Type:        ItemTypeConsumable,
		Description: "Restores 50% of max health.",
		Effect:      ConsumableEffect{HealFraction: 0.5},
	})

	Register(ItemDefinition{
		ID:          IDSwiftBoots,
		Name:        "Swift Boots",
		Type:        ItemTypeConsumable,
		Description: "Movement speed +0.5.",
		Effect:      ConsumableEffect{SpeedBonus: 0.5},
	})
}
