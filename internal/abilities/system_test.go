package abilities

import (
	"testing"

	"new-haven-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSystem(t *testing.T) *System {
	t.Helper()
	c, err := DefaultCatalog()
	require.NoError(t, err)
	return NewSystem(c)
}

func newCaster(id string, x float64) *domain.Entity {
	e := domain.NewEntity(id, domain.NewTransform(x, 0), domain.Size{W: 32, H: 48})
	e.Type = domain.EntityTypePlayer
	e.Physics = domain.NewPhysicsComponent()
	e.Combat = domain.NewCombatComponent(func(c *domain.CombatComponent) {
		c.Mana, c.MaxMana = 200, 200
	})
	e.Player = domain.NewPlayerComponent()
	e.Ability = domain.NewAbilityComponent()
	return e
}

func newTarget(id string, x float64) *domain.Entity {
	e := domain.NewEntity(id, domain.NewTransform(x, 0), domain.Size{W: 32, H: 48})
	e.Type = domain.EntityTypeEnemy
	e.Physics = domain.NewPhysicsComponent()
	e.Combat = domain.NewCombatComponent()
	e.AI = domain.NewAIComponent()
	return e
}

func TestCheck_Reasons(t *testing.T) {
	s := newTestSystem(t)
	player := newCaster("player", 0)
	caster := Caster{Entity: player, Level: 1, Class: "samurai"}
	learned := []string{"plasma_bolt", "mono_slash", "overclock", "neural_virus", "drone_swarm"}

	tests := []struct {
		name string
		id   string
		mana float64
		want error
	}{
		{"Ready", "plasma_bolt", 100, nil},
		{"Unknown", "fireball", 100, ErrUnknownAbility},
		{"Not learned", "nano_heal", 100, ErrNotLearned},
		{"Low mana", "plasma_bolt", 14, ErrInsufficientMana},
		{"Level too low", "overclock", 100, ErrRequirementUnmet},
		{"Wrong class", "neural_virus", 100, ErrRequirementUnmet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Check(tt.id, caster, tt.mana, learned)
			if tt.want == nil {
				assert.NoError(t, err)
				assert.True(t, s.CanUse(tt.id, caster, tt.mana, learned))
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, s.CanUse(tt.id, caster, tt.mana, learned))
		})
	}

	s.Cooldowns().Set("player", "plasma_bolt", 1)
	assert.ErrorIs(t, s.Check("plasma_bolt", caster, 100, learned), ErrOnCooldown)
}

func TestUse_InsufficientManaChangesNothing(t *testing.T) {
	s := newTestSystem(t)
	player := newCaster("player", 0)
	player.Combat.Mana = 5
	enemy := newTarget("enemy", 50)
	w := domain.NewWorld()
	require.NoError(t, w.Spawn(player))
	require.NoError(t, w.Spawn(enemy))

	for _, id := range []string{"plasma_bolt", "mono_slash"} {
		res, err := s.Use(w, UseRequest{
			AbilityID: id,
			Caster:    Caster{Entity: player, Level: 1, Class: "samurai"},
			Learned:   []string{"plasma_bolt", "mono_slash"},
			TargetID:  "enemy",
		})
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrInsufficientMana)
	}

	assert.Equal(t, 5.0, player.Combat.Mana)
	assert.Equal(t, 0, s.Cooldowns().Len())
	assert.Equal(t, 100.0, enemy.Combat.Health)
	assert.Equal(t, 2, w.Len())
}

func TestUse_MeleeDamageAndDebuff(t *testing.T) {
	s := newTestSystem(t)
	player := newCaster("player", 0)
	enemy := newTarget("enemy", 50)
	enemy.Combat.Defense = 5
	w := domain.NewWorld()
	require.NoError(t, w.Spawn(player))
	require.NoError(t, w.Spawn(enemy))
	req := UseRequest{
		AbilityID: "mono_slash",
		Caster:    Caster{Entity: player, Level: 1, Class: "samurai"},
		Learned:   []string{"mono_slash"},
	}

	res, err := s.Use(w, req)
	require.NoError(t, err)

	require.Len(t, res.Hits, 2)
	assert.Equal(t, 30.0, res.Hits[0].Damage)
	assert.Equal(t, 70.0, enemy.Combat.Health)
	assert.True(t, enemy.Combat.HasStatus(domain.StatusStun))
	assert.Equal(t, 190.0, player.Combat.Mana)
	assert.Equal(t, 2.0, s.Cooldowns().Remaining("player", "mono_slash"))

	// Повтор - перезарядка, мана не тратится
	_, err = s.Use(w, req)
	assert.ErrorIs(t, err, ErrOnCooldown)
	assert.Equal(t, 190.0, player.Combat.Mana)

	// Другой кастер той же способностью не заблокирован
	ally := newCaster("ally", 10)
	require.NoError(t, w.Spawn(ally))
	_, err = s.Use(w, UseRequest{
		AbilityID: "mono_slash",
		Caster:    Caster{Entity: ally, Level: 1, Class: "samurai"},
		Learned:   []string{"mono_slash"},
		TargetID:  "enemy",
	})
	assert.NoError(t, err)
}

func TestUse_TargetValidation(t *testing.T) {
	s := newTestSystem(t)
	player := newCaster("player", 0)
	far := newTarget("far", 1000)
	w := domain.NewWorld()
	require.NoError(t, w.Spawn(player))
	require.NoError(t, w.Spawn(far))
	caster := Caster{Entity: player, Level: 1, Class: "samurai"}

	_, err := s.Use(w, UseRequest{AbilityID: "mono_slash", Caster: caster, Learned: []string{"mono_slash"}, TargetID: "far"})
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = s.Use(w, UseRequest{AbilityID: "mono_slash", Caster: caster, Learned: []string{"mono_slash"}})
	assert.ErrorIs(t, err, ErrNoTarget)

	assert.Equal(t, 200.0, player.Combat.Mana)
	assert.Equal(t, 0, s.Cooldowns().Len())
}

func TestUse_ProjectileSpawn(t *testing.T) {
	s := newTestSystem(t)
	player := newCaster("player", 0)
	player.Player.Facing = -1
	w := domain.NewWorld()
	require.NoError(t, w.Spawn(player))

	res, err := s.Use(w, UseRequest{
		AbilityID: "plasma_bolt",
		Caster:    Caster{Entity: player, Level: 1},
		Learned:   []string{"plasma_bolt"},
	})
	require.NoError(t, err)
	require.Len(t, res.Spawned, 1)

	proj := w.GetEntity(res.Spawned[0])
	require.NotNil(t, proj)
	assert.Equal(t, domain.ColliderProjectile, proj.Collider.Type)
	assert.Equal(t, "player", proj.Projectile.OwnerID)
	assert.Equal(t, 25.0, proj.Projectile.Damage)
	assert.Equal(t, -ProjectileSpeed, proj.Physics.Velocity.X)
	assert.False(t, proj.Physics.GravityEnabled)
}

func TestUse_LevelScaling(t *testing.T) {
	s := newTestSystem(t)
	player := newCaster("player", 0)
	player.Ability.Levels["plasma_bolt"] = 3
	w := domain.NewWorld()
	require.NoError(t, w.Spawn(player))

	res, err := s.Use(w, UseRequest{
		AbilityID: "plasma_bolt",
		Caster:    Caster{Entity: player, Level: 1},
		Learned:   []string{"plasma_bolt"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Level)
	assert.Equal(t, 13.0, res.ManaSpent)
	assert.InDelta(t, 1.3, res.Cooldown, 1e-9)
	assert.Equal(t, 35.0, w.GetEntity(res.Spawned[0]).Projectile.Damage)
}

func TestUse_SelfEffects(t *testing.T) {
	s := newTestSystem(t)
	player := newCaster("player", 0)
	player.Combat.Health = 50
	w := domain.NewWorld()
	require.NoError(t, w.Spawn(player))
	caster := Caster{Entity: player, Level: 1}
	learned := []string{"nano_heal", "kinetic_shield"}

	res, err := s.Use(w, UseRequest{AbilityID: "nano_heal", Caster: caster, Learned: learned})
	require.NoError(t, err)
	assert.Equal(t, 30.0, res.Healed)
	assert.Equal(t, 80.0, player.Combat.Health)
	assert.Equal(t, 0.3, res.CastTime)

	_, err = s.Use(w, UseRequest{AbilityID: "kinetic_shield", Caster: caster, Learned: learned})
	require.NoError(t, err)
	shield := player.Combat.Status(domain.StatusShield)
	require.NotNil(t, shield)
	assert.Equal(t, 40.0, shield.Potency)
}

func TestUse_TeleportClampsToRange(t *testing.T) {
	s := newTestSystem(t)
	player := newCaster("player", 0)
	w := domain.NewWorld()
	require.NoError(t, w.Spawn(player))
	origin := player.Center()
	dest := domain.Vec2{X: origin.X + 1000, Y: origin.Y}

	res, err := s.Use(w, UseRequest{
		AbilityID: "phase_shift",
		Caster:    Caster{Entity: player, Level: 3},
		Learned:   []string{"phase_shift"},
		TargetPos: &dest,
	})
	require.NoError(t, err)

	assert.True(t, res.Teleported)
	assert.InDelta(t, origin.X+250, player.Center().X, 1e-9)
	assert.Equal(t, player.Transform.Position.X, player.Bounds.X)
}

func TestUse_AreaHitsEveryoneInside(t *testing.T) {
	s := newTestSystem(t)
	player := newCaster("player", 0)
	a := newTarget("a", 100)
	b := newTarget("b", -100)
	c := newTarget("c", 600)
	w := domain.NewWorld()
	for _, e := range []*domain.Entity{player, a, b, c} {
		require.NoError(t, w.Spawn(e))
	}

	res, err := s.Use(w, UseRequest{
		AbilityID: "emp_burst",
		Caster:    Caster{Entity: player, Level: 4, Class: "netrunner"},
		Learned:   []string{"emp_burst", "neural_virus"},
	})
	require.NoError(t, err)

	assert.Less(t, a.Combat.Health, 100.0)
	assert.Less(t, b.Combat.Health, 100.0)
	assert.Equal(t, 100.0, c.Combat.Health)
	assert.True(t, a.Combat.HasStatus(domain.StatusStun))
	assert.Equal(t, 40.0, res.TotalDamage())
}

func TestUse_SummonAndTransform(t *testing.T) {
	s := newTestSystem(t)
	player := newCaster("player", 0)
	w := domain.NewWorld()
	require.NoError(t, w.Spawn(player))

	res, err := s.Use(w, UseRequest{
		AbilityID: "drone_swarm",
		Caster:    Caster{Entity: player, Level: 10, Class: "netrunner"},
		Learned:   []string{"drone_swarm", "neural_virus"},
	})
	require.NoError(t, err)
	require.Len(t, res.Spawned, 1)
	drone := w.GetEntity(res.Spawned[0])
	require.NotNil(t, drone)
	assert.Equal(t, domain.ColliderSummon, drone.Collider.Type)
	assert.Equal(t, 15.0, drone.Projectile.Lifetime)
	assert.Equal(t, 1.0, res.CastTime)

	samurai := newCaster("samurai", 0)
	require.NoError(t, w.Spawn(samurai))
	res, err = s.Use(w, UseRequest{
		AbilityID: "berserker_protocol",
		Caster:    Caster{Entity: samurai, Level: 12, Class: "samurai"},
		Learned:   []string{"berserker_protocol", "overclock"},
	})
	require.NoError(t, err)
	assert.Equal(t, "berserker", samurai.Player.Form)
	assert.True(t, samurai.Combat.HasStatus(domain.StatusBerserk))
}

func TestUpdate_ClearsCooldowns(t *testing.T) {
	s := newTestSystem(t)
	s.Cooldowns().Set("player", "plasma_bolt", 0.5)
	s.Update(0.6)
	assert.Equal(t, 0, s.Cooldowns().Len())
}
