package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgradePoolIsComplete(t *testing.T) {
	require.Equal(t, []string{IDMagicWand, IDOrbitGuardian, IDArcSlasher, IDHealthPotion, IDSwiftBoots}, UpgradePool)
	for _, id := range UpgradePool {
		item, ok := Get(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.Description)
	}
}

func TestForWeapon(t *testing.T) {
	for _, kind := range []WeaponKind{MagicWand, OrbitGuardian, ArcSlasher} {
		item, ok := ForWeapon(kind)
		require.True(t, ok, kind.String())
		assert.Equal(t, kind.String(), item.ID)
		assert.Equal(t, ItemTypeWeapon, item.Type)
	}

	_, ok := ForWeapon(WeaponKind(42))
	assert.False(t, ok)
	assert.Equal(t, "WeaponKind(42)", WeaponKind(42).String())
}

func TestWeaponStatsAdd(t *testing.T) {
	wand, _ := Get(IDMagicWand)
	stats := wand.WeaponStats
	stats.Add(wand.Growth)
	stats.Add(wand.Growth)

	assert.Equal(t, 22.0, stats.Damage)
	assert.Equal(t, 3, stats.ProjectileCount)
	assert.Equal(t, 90, stats.Cooldown, "growth leaves the cooldown alone")
}

func TestConsumables(t *testing.T) {
	potion, ok := Get(IDHealthPotion)
	require.True(t, ok)
	assert.Equal(t, ItemTypeConsumable, potion.Type)
	assert.Equal(t, 0.5, potion.Effect.HealFraction)

	boots, ok := Get(IDSwiftBoots)
	require.True(t, ok)
	assert.Equal(t, 0.5, boots.Effect.SpeedBonus)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() { Register(ItemDefinition{ID: IDArcSlasher}) })
}
