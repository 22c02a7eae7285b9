package levels

import (
	"testing"

	"new-haven-server/internal/domain"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_OutOfRange(t *testing.T) {
	g := NewGenerator(1)
	for _, id := range []int{0, -3, 101} {
		_, err := g.Generate(id)
		assert.True(t, errors.Is(err, ErrLevelOutOfRange), "level %d", id)
	}
}

func TestGenerate_Cached(t *testing.T) {
	g := NewGenerator(7)
	a, err := g.Generate(12)
	require.NoError(t, err)
	b, err := g.Generate(12)
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, g.Cached())
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := NewGenerator(42).Generate(42)
	require.NoError(t, err)
	b, err := NewGenerator(42).Generate(42)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := NewGenerator(43).Generate(42)
	require.NoError(t, err)
	assert.NotEqual(t, a.Platforms, c.Platforms)
}

func TestGenerate_BossLevel(t *testing.T) {
	data, err := NewGenerator(1).Generate(5)
	require.NoError(t, err)

	assert.True(t, data.IsBossLevel)

	bosses := data.Bosses()
	require.Len(t, bosses, 1)
	assert.InDelta(t, 5*BaseHealth(5), bosses[0].Health, 1e-9)
	assert.InDelta(t, 2*BaseDamage(5), bosses[0].Damage, 1e-9)

	delayed := data.DelayedSpawns()
	require.Len(t, delayed, 3)
	assert.Equal(t, 5.0, delayed[0].SpawnDelay)
	assert.Equal(t, 10.0, delayed[1].SpawnDelay)
	assert.Equal(t, 15.0, delayed[2].SpawnDelay)

	require.NotEmpty(t, data.Objectives)
	assert.Equal(t, ObjectiveKillBoss, data.Objectives[0].Type)
	assert.Equal(t, 1, data.Objectives[0].Target)
	assert.False(t, data.Objectives[0].Optional)
}

func TestGenerate_RegularLevel(t *testing.T) {
	data, err := NewGenerator(1).Generate(12)
	require.NoError(t, err)

	assert.False(t, data.IsBossLevel)
	assert.Equal(t, EnvBuilding, data.Environment)
	assert.Equal(t, DifficultyNormal, data.Difficulty)
	assert.Len(t, data.Enemies, 3) // min(5, 2 + 12/10)
	assert.Len(t, data.Platforms, 1+3)
	assert.Equal(t, 2400.0+40*12, data.Bounds.Width)
	assert.Equal(t, ObjectiveKillAll, data.Objectives[0].Type)
	assert.Equal(t, 3, data.Objectives[0].Target)

	for i, e := range data.Enemies {
		spacing := (data.Bounds.Width - 800) / 3
		minX := 400 + float64(i)*spacing
		assert.GreaterOrEqual(t, e.Position.X, minX)
		assert.Less(t, e.Position.X, minX+EnemyJitter)
		require.Len(t, e.PatrolPath, 2)
		assert.InDelta(t, 200, e.PatrolPath[1].X-e.PatrolPath[0].X, 1e-9)
	}
}

func TestTables(t *testing.T) {
	tests := []struct {
		id   int
		env  Environment
		diff Difficulty
	}{
		{1, EnvStreet, DifficultyNormal},
		{10, EnvStreet, DifficultyNormal},
		{11, EnvBuilding, DifficultyNormal},
		{26, EnvRooftop, DifficultyDifficult},
		{75, EnvCyberspace, DifficultyDifficult},
		{76, EnvCyberspace, DifficultyImpossible},
		{100, EnvVoidSpace, DifficultyImpossible},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.env, environmentFor(tt.id).Env, "level %d", tt.id)
		assert.Equal(t, tt.diff, DifficultyFor(tt.id), "level %d", tt.id)
	}

	assert.Equal(t, 60.0, BaseHealth(1))
	assert.Equal(t, (50+10*50)*1.25, BaseHealth(50))
	assert.Equal(t, (8+2*80)*1.5, BaseDamage(80))
	assert.Equal(t, 5, RegularEnemyCount(99))
	assert.Equal(t, 8, FloatingPlatformCount(100))
}

func TestGenerate_Atmosphere(t *testing.T) {
	g := NewGenerator(3)
	early, _ := g.Generate(3)
	late, _ := g.Generate(90)

	assert.Equal(t, 1.0, early.Lighting.Intensity)
	assert.False(t, early.Lighting.Flicker)
	assert.Equal(t, 0.6, late.Lighting.Intensity)
	assert.True(t, late.Lighting.Flicker)

	for _, p := range late.Platforms[1:] {
		assert.True(t, p.OneWay)
	}
	for _, p := range early.Platforms {
		assert.False(t, p.OneWay)
	}
}

func TestObjectives(t *testing.T) {
	data, _ := NewGenerator(1).Generate(2)
	objs := data.CopyObjectives()
	assert.False(t, AllComplete(objs))

	main := &objs[0]
	for i := 0; i < main.Target-1; i++ {
		assert.False(t, main.Advance(1))
	}
	assert.True(t, main.Advance(1))
	assert.False(t, main.Advance(1), "completes once")
	assert.True(t, AllComplete(objs), "optional objectives do not block")
	// Кэшированный дескриптор не меняется
	assert.Zero(t, data.Objectives[0].Progress)
	assert.False(t, data.Objectives[0].Completed)
}

func TestPopulate(t *testing.T) {
	data, err := NewGenerator(1).Generate(5)
	require.NoError(t, err)

	w := domain.NewWorld()
	pending, err := Populate(w, data)
	require.NoError(t, err)
	assert.Len(t, pending, 3)

	boss := w.GetEntity("boss")
	require.NotNil(t, boss)
	assert.Equal(t, domain.EntityTypeBoss, boss.Type)
	require.NotNil(t, boss.Boss)
	assert.Equal(t, 3, boss.Boss.MinionsPending)
	assert.Equal(t, 5*BaseHealth(5), boss.Combat.MaxHealth)

	assert.Len(t, w.With(domain.KindPlatform), len(data.Platforms))
	assert.Len(t, w.With(domain.KindLoot, domain.KindCollider), len(data.Pickups)+1)

	_, err = Populate(w, data)
	assert.True(t, errors.Is(err, domain.ErrDuplicateEntity))
}

func TestCreatePlayer(t *testing.T) {
	p := CreatePlayer("player", domain.Vec2{X: 100, Y: 752})
	assert.Equal(t, domain.EntityTypePlayer, p.Type)
	assert.True(t, p.HasAll(domain.KindPhysics, domain.KindCombat, domain.KindPlayer, domain.KindCollider, domain.KindAbility))
	assert.Equal(t, StarterAbilities[0], p.Ability.Equipped[0])

	p.Combat.TakeDamage(40)
	p.Combat.Dead = true
	p.SetPosition(900, 10)
	ResetPlayer(p, domain.Vec2{X: 100, Y: 752})
	assert.Equal(t, p.Combat.MaxHealth, p.Combat.Health)
	assert.False(t, p.Combat.Dead)
	assert.Equal(t, 100.0, p.Bounds.X)
}
