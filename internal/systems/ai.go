package systems

import (
	"math"
	"math/rand"
	"new-haven-server/internal/domain"
	"new-haven-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Boss enrage
const (
	EnrageSpeedFactor  = 1.3
	EnrageDamageFactor = 1.5
	SlowFactor         = 0.5
)

// UpdateAI гоняет автомат patrol -> chase -> attack -> chase для каждого врага.
// Отслеживается только первый активный игрок. Источник случайности передается снаружи.
func UpdateAI(w *domain.World, dt float64, rng *rand.Rand, sink Sink) {
	sink = sinkOrNop(sink)
	player := w.FirstPlayer()

	for _, e := range w.ActiveWith(domain.KindAI, domain.KindPhysics) {
		if e.Player != nil {
			continue
		}
		updateEnemy(e, player, rng, sink)
	}
}

func updateEnemy(e, player *domain.Entity, rng *rand.Rand, sink Sink) {
	ai := e.AI

	if e.Combat != nil {
		// Оглушение и заморозка выключают мозги на этот тик
		if e.Combat.HasStatus(domain.StatusStun) || e.Combat.HasStatus(domain.StatusFreeze) {
			e.Physics.Velocity.X = 0
			return
		}
		if e.Boss != nil {
			checkEnrage(e, sink)
		}
	}

	speed := ai.MoveSpeed
	if e.Combat != nil && e.Combat.HasStatus(domain.StatusSlow) {
		speed *= SlowFactor
	}

	dist := math.Inf(1)
	if player != nil {
		dist = e.Center().DistanceTo(player.Center())
	}

	aiLogger := logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"entity_id": e.ID,
		"state":     string(ai.State()),
	})

	switch ai.State() {
	case domain.AIStatePatrol:
		patrol(e, speed, rng)
		if player != nil && dist < ai.DetectionRange {
			ai.Fire(domain.AIEventDetect)
			ai.TargetID = player.ID
			aiLogger.WithField("distance", dist).Debug("Target detected.")
		}

	case domain.AIStateChase:
		if player == nil || dist > domain.ChaseLoseFactor*ai.DetectionRange {
			ai.Fire(domain.AIEventLose)
			ai.TargetID = ""
			aiLogger.Debug("Target lost.")
			return
		}
		chase(e, player, speed)
		if dist < ai.AttackRange && e.Combat != nil && e.Combat.AttackCooldown <= 0 {
			ai.Fire(domain.AIEventEngage)
		}

	case domain.AIStateAttack:
		e.Physics.Velocity.X = 0
		if player != nil && e.Combat != nil {
			e.Combat.AttackCooldown = e.Combat.MaxAttackCooldown
			// Атака врага идет через общий DealDamage с полом в 1
			dmg := DealDamage(e, player, e.Combat.Damage)
			if e.Animation != nil {
				e.Animation.Play("attack", 0.3)
			}
			aiLogger.WithField("damage", dmg).Debug("Enemy attack.")
			sink.OnEnemyAttack(e, player, dmg)
		}
		// Атака длится ровно один тик
		ai.Fire(domain.AIEventRecover)
	}
}

func patrol(e *domain.Entity, speed float64, rng *rand.Rand) {
	ai := e.AI
	if ai.Direction == 0 {
		ai.Direction = 1
		if rng.Intn(2) == 0 {
			ai.Direction = -1
		}
	}

	if rng.Float64() < domain.PatrolReverseChance {
		ai.Direction = -ai.Direction
	}

	// Разворот на краях маршрута
	if len(ai.PatrolPath) >= 2 {
		minX, maxX := ai.PatrolPath[0].X, ai.PatrolPath[0].X
		for _, p := range ai.PatrolPath[1:] {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
		}
		x := e.Transform.Position.X
		if x <= minX && ai.Direction < 0 {
			ai.Direction = 1
		} else if x >= maxX && ai.Direction > 0 {
			ai.Direction = -1
		}
	}

	e.Physics.Velocity.X = ai.Direction * speed * domain.PatrolSpeedFactor
}

func chase(e, player *domain.Entity, speed float64) {
	dx := player.Center().X - e.Center().X
	e.Physics.Velocity.X = domain.Sign(dx) * speed
	if dx != 0 {
		e.AI.Direction = domain.Sign(dx)
	}

	// Игрок заметно выше - прыгаем
	if player.Bounds.Y < e.Bounds.Y-domain.EnemyJumpThreshold && e.Physics.OnGround {
		e.Physics.Velocity.Y = domain.EnemyJumpVelocity
		e.Physics.OnGround = false
	}
}

func checkEnrage(e *domain.Entity, sink Sink) {
	b := e.Boss
	if b.Enraged || e.Combat.HealthRatio() >= domain.BossEnrageThreshold {
		return
	}

	b.Enraged = true
	b.Phase = 2
	if b.BaseMoveSpeed == 0 {
		b.BaseMoveSpeed = e.AI.MoveSpeed
	}
	e.AI.MoveSpeed = b.BaseMoveSpeed * EnrageSpeedFactor
	e.Combat.Damage *= EnrageDamageFactor

	logger.Log.WithFields(logrus.Fields{
		"component": "ai_system",
		"entity_id": e.ID,
		"health":    e.Combat.Health,
	}).Info("Boss enraged.")
	sink.OnBossEnrage(e)
}
