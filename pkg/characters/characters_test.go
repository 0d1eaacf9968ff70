package characters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryHoldsEveryKind(t *testing.T) {
	for _, kind := range []EnemyKind{Zombie, Bat, Skeleton} {
		def, ok := Get(kind)
		require.True(t, ok, kind.String())
		assert.Equal(t, kind, def.Kind)
		assert.Positive(t, def.Radius)
		assert.Positive(t, def.MaxHealth)
		assert.Positive(t, def.XPValue)
	}
}

func TestSkeletonIsRanged(t *testing.T) {
	def := MustGet(Skeleton)
	assert.Equal(t, 250.0, def.PreferredRange)
	assert.Equal(t, 240, def.ShootInterval)
	assert.Equal(t, 15, def.ProjectileDmg)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		Register(CharacterDefinition{Kind: Zombie})
	})
}

func TestUnknownKind(t *testing.T) {
	_, ok := Get(EnemyKind(99))
	assert.False(t, ok)
	assert.Equal(t, "EnemyKind(99)", EnemyKind(99).String())
	assert.Panics(t, func() { MustGet(EnemyKind(99)) })
}
