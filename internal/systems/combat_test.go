package systems

import (
	"testing"

	"new-haven-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealDamage_DefenseFloor(t *testing.T) {
	tests := []struct {
		name    string
		raw     float64
		defense float64
		want    float64
	}{
		{"Raw above defense", 25, 10, 15},
		{"Raw below defense", 5, 10, 1},
		{"Huge defense", 1, 1e9, 1},
		{"Zero raw", 0, 0, 1},
		{"No defense", 12, 0, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := newEnemy("target", 0, 0)
			target.Combat.Defense = tt.defense
			before := target.Combat.Health

			got := DealDamage(nil, target, tt.raw)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, before-tt.want, target.Combat.Health)
		})
	}
}

func TestDealDamage_PlayerDefenseScenario(t *testing.T) {
	player := newPlayer("player", 0, 0)
	player.Combat.Defense = 10
	enemy := newEnemy("enemy", 0, 0)

	DealDamage(enemy, player, 5)

	assert.Equal(t, 99.0, player.Combat.Health)
}

func TestDealDamage_ClampsAtZero(t *testing.T) {
	target := newEnemy("target", 0, 0)
	DealDamage(nil, target, 1e6)
	assert.Equal(t, 0.0, target.Combat.Health)
}

func TestDealDamage_NoValueCases(t *testing.T) {
	rock := newBody("rock", 0, 0, "")
	assert.Equal(t, 0.0, DealDamage(nil, rock, 50))
	assert.Equal(t, 0.0, DealDamage(nil, nil, 50))

	dead := newEnemy("dead", 0, 0)
	dead.Combat.Dead = true
	assert.Equal(t, 0.0, DealDamage(nil, dead, 50))

	dashing := newPlayer("player", 0, 0)
	dashing.Player.DashTimer = 0.1
	assert.Equal(t, 0.0, DealDamage(nil, dashing, 50))
	assert.Equal(t, 100.0, dashing.Combat.Health)
}

func TestDealDamage_InvulnerableIgnoresHitEntirely(t *testing.T) {
	player := newPlayer("player", 0, 0)
	player.Player.InvulnerableTimer = 0.5
	player.Combat.AddStatus(domain.NewStatusEffect(domain.StatusShield, 5, 20))
	enemy := newEnemy("enemy", 0, 0)

	// Пол в 1 к проигнорированному удару не применяется, щит тоже цел
	assert.Equal(t, 0.0, DealDamage(enemy, player, 50))
	assert.Equal(t, 100.0, player.Combat.Health)
	assert.Equal(t, 20.0, player.Combat.Status(domain.StatusShield).Potency)

	player.Player.InvulnerableTimer = 0
	assert.Equal(t, 30.0, DealDamage(enemy, player, 50))
}

func TestDealDamage_ShieldAndBerserk(t *testing.T) {
	target := newEnemy("target", 0, 0)
	require.True(t, ApplyStatus(target, domain.NewStatusEffect(domain.StatusShield, 10, 20)))

	// Щит съедает 20 из 30
	assert.Equal(t, 10.0, DealDamage(nil, target, 30))
	assert.Equal(t, 0.0, target.Combat.Status(domain.StatusShield).Potency)

	attacker := newEnemy("attacker", 0, 0)
	require.True(t, ApplyStatus(attacker, domain.NewStatusEffect(domain.StatusBerserk, 5, 0)))
	target2 := newEnemy("target2", 0, 0)
	assert.Equal(t, 15.0, DealDamage(attacker, target2, 10))
}

func TestUpdateCombat_CooldownFloor(t *testing.T) {
	e := newEnemy("e", 0, 0)
	e.Combat.AttackCooldown = 0.01
	w := spawnAll(e)

	UpdateCombat(w, 0.5, nil)

	assert.Equal(t, 0.0, e.Combat.AttackCooldown)
}

func TestUpdateCombat_PoisonTicksAndExpires(t *testing.T) {
	e := newEnemy("e", 0, 0)
	require.True(t, ApplyStatus(e, domain.NewStatusEffect(domain.StatusPoison, 1.5, 2)))
	w := spawnAll(e)

	UpdateCombat(w, 0.5, nil)
	assert.Equal(t, 100.0, e.Combat.Health)
	require.Len(t, e.Combat.StatusEffects, 1)

	UpdateCombat(w, 0.5, nil)
	assert.Equal(t, 98.0, e.Combat.Health)
	require.Len(t, e.Combat.StatusEffects, 1)
	assert.Equal(t, domain.StatusTickInterval, e.Combat.StatusEffects[0].TickTimer)

	// Длительность дошла до нуля - эффект снят в этот же тик
	UpdateCombat(w, 0.5, nil)
	assert.Empty(t, e.Combat.StatusEffects)
	assert.Equal(t, 98.0, e.Combat.Health)
}

func TestUpdateCombat_RegenerationHeals(t *testing.T) {
	e := newEnemy("e", 0, 0)
	e.Combat.Health = 50
	require.True(t, ApplyStatus(e, domain.NewStatusEffect(domain.StatusRegeneration, 5, 10)))
	w := spawnAll(e)

	UpdateCombat(w, 1.0, nil)

	assert.Equal(t, 60.0, e.Combat.Health)
}

func TestUpdateCombat_DeathExactlyOnce(t *testing.T) {
	e := newEnemy("e", 0, 0)
	calls := 0
	e.Combat.OnDeath = func(*domain.Entity) { calls++ }
	sink := &recordSink{}
	w := spawnAll(e)

	DealDamage(nil, e, 1000)
	UpdateCombat(w, tick, sink)
	UpdateCombat(w, tick, sink)
	Kill(e, sink)

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"e"}, sink.deaths)
	assert.False(t, e.Active)
	assert.True(t, e.Combat.Dead)
}

func TestApplyStatus_Immunity(t *testing.T) {
	e := newEnemy("e", 0, 0)
	e.Combat.Immunities = []domain.StatusType{domain.StatusPoison}

	assert.False(t, ApplyStatus(e, domain.NewStatusEffect(domain.StatusPoison, 3, 1)))
	assert.Empty(t, e.Combat.StatusEffects)
}
