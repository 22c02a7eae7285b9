package systems

import (
	"testing"

	"new-haven-server/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollision_PlatformCases(t *testing.T) {
	tests := []struct {
		name       string
		platform   *domain.Entity
		x, y       float64
		vel        domain.Vec2
		wantX      float64
		wantY      float64
		wantVel    domain.Vec2
		wantGround bool
	}{
		{
			name:     "Land on top",
			platform: newPlatform("floor", 0, 100, 200, 20),
			x:        50, y: 57, vel: domain.Vec2{X: 1, Y: 5},
			wantX: 50, wantY: 52, wantVel: domain.Vec2{X: 1}, wantGround: true,
		},
		{
			name:     "Resting body stays grounded",
			platform: newPlatform("floor", 0, 100, 200, 20),
			x:        50, y: 52,
			wantX: 50, wantY: 52, wantGround: true,
		},
		{
			name:     "Ceiling bump",
			platform: newPlatform("slab", 0, 100, 200, 20),
			x:        50, y: 115, vel: domain.Vec2{Y: -5},
			wantX: 50, wantY: 120,
		},
		{
			name:     "Side push from the left",
			platform: newPlatform("wall", 100, 0, 20, 200),
			x:        90, y: 50, vel: domain.Vec2{X: 3},
			wantX: 68, wantY: 50,
		},
		{
			name:     "Side push from the right",
			platform: newPlatform("wall", 100, 0, 20, 200),
			x:        115, y: 50, vel: domain.Vec2{X: -3},
			wantX: 120, wantY: 50,
		},
		{
			// Пересечение и сверху, и сбоку: приземление проверяется первым
			name:     "Top corner lands instead of side push",
			platform: newPlatform("floor", 0, 100, 200, 20),
			x:        185, y: 60, vel: domain.Vec2{X: 4, Y: 3},
			wantX: 185, wantY: 52, wantVel: domain.Vec2{X: 4}, wantGround: true,
		},
		{
			name:     "Bottom corner bumps head instead of side push",
			platform: newPlatform("slab", 0, 100, 200, 20),
			x:        185, y: 115, vel: domain.Vec2{X: 4, Y: -5},
			wantX: 185, wantY: 120, wantVel: domain.Vec2{X: 4},
		},
		{
			name: "One-way platform lets jumps through",
			platform: func() *domain.Entity {
				p := newPlatform("ledge", 0, 100, 200, 10)
				p.Platform.OneWay = true
				return p
			}(),
			x: 50, y: 90, vel: domain.Vec2{Y: -8},
			wantX: 50, wantY: 90, wantVel: domain.Vec2{Y: -8},
		},
		{
			name:     "Far platform is ignored",
			platform: newPlatform("far", 1000, 1000, 10, 10),
			x:        0, y: 0, vel: domain.Vec2{Y: 2},
			wantX: 0, wantY: 0, wantVel: domain.Vec2{Y: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := newBody("body", tt.x, tt.y, "")
			body.Physics.Velocity = tt.vel
			body.Physics.OnGround = true // должен сброситься
			w := spawnAll(tt.platform, body)

			UpdateCollisions(w, nil)

			assert.Equal(t, tt.wantX, body.Transform.Position.X)
			assert.Equal(t, tt.wantY, body.Transform.Position.Y)
			assert.Equal(t, tt.wantVel, body.Physics.Velocity)
			assert.Equal(t, tt.wantGround, body.Physics.OnGround)
			assert.Equal(t, body.Transform.Position.Y, body.Bounds.Y)
		})
	}
}

func TestCollision_LandingInvariant(t *testing.T) {
	floor := newPlatform("floor", 0, 300, 500, 40)
	body := newBody("body", 100, 200, "")
	w := spawnAll(floor, body)

	// Роняем тело, пока не встанет
	for i := 0; i < 120 && !body.Physics.OnGround; i++ {
		UpdatePhysics(w, tick)
		UpdateCollisions(w, nil)
	}

	require.True(t, body.Physics.OnGround)
	assert.Equal(t, floor.Bounds.Y, body.Bounds.Y+body.Size.H)
	assert.Equal(t, 0.0, body.Physics.Velocity.Y)

	// И остается стоять на следующих тиках
	for i := 0; i < 10; i++ {
		UpdatePhysics(w, tick)
		UpdateCollisions(w, nil)
	}
	assert.True(t, body.Physics.OnGround)
	assert.Equal(t, floor.Bounds.Y, body.Bounds.Y+body.Size.H)
}

func TestCollision_EntityPairs(t *testing.T) {
	player := newPlayer("player", 0, 0)
	enemy := newEnemy("enemy", 10, 0)
	other := newEnemy("enemy_2", 12, 0)
	pickup := newBody("pickup", 5, 5, domain.ColliderPickup)
	pickup.Collider.IsTrigger = true
	sink := &recordSink{}
	w := spawnAll(player, enemy, other, pickup)

	UpdateCollisions(w, sink)

	assert.Equal(t, []string{"enemy", "enemy_2"}, sink.contacts)
	assert.Equal(t, []string{"pickup"}, sink.pickups)
	// enemy↔enemy игнорируется
	assert.Empty(t, sink.hits)
}

func TestCollision_ProjectileHitsOnlyOnce(t *testing.T) {
	proj := newBody("bolt", 0, 0, domain.ColliderProjectile)
	proj.Collider.IsTrigger = true
	a := newEnemy("a", 5, 0)
	b := newEnemy("b", 6, 0)
	sink := &recordSink{}
	w := spawnAll(proj, a, b)

	UpdateCollisions(w, sink)

	assert.Equal(t, []string{"a"}, sink.hits)
	assert.False(t, proj.Active)
}

func TestCollision_TouchingEdgesDoNotCollide(t *testing.T) {
	player := newPlayer("player", 0, 0)
	enemy := newEnemy("enemy", domain.PlayerWidth, 0)
	sink := &recordSink{}

	UpdateCollisions(spawnAll(player, enemy), sink)

	assert.Empty(t, sink.contacts)
}
