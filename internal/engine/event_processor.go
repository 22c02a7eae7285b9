package engine

import (
	"math"
	"new-haven-server/internal/domain"
	"new-haven-server/internal/systems"
	"new-haven-server/pkg/levels"
	"new-haven-server/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Отброс игрока при контакте
const (
	KnockbackX = 6.0
	KnockbackY = -5.0
	HurtLock   = 0.2
)

// eventSink превращает события систем в изменения матча и события шины
type eventSink struct {
	m *Manager
}

var _ systems.Sink = (*eventSink)(nil)

// OnContact - враг задел игрока: урон + окно неуязвимости + отброс
func (s *eventSink) OnContact(player, enemy *domain.Entity) {
	if enemy.Combat == nil || enemy.Combat.Dead || player.Player == nil {
		return
	}
	dmg := systems.DealDamage(enemy, player, enemy.Combat.Damage)
	if dmg <= 0 {
		return
	}
	player.Player.InvulnerableTimer = domain.PlayerInvulnerable
	if player.Physics != nil {
		dir := math.Copysign(1, player.Center().X-enemy.Center().X)
		player.Physics.Velocity.X = dir * KnockbackX
		player.Physics.Velocity.Y = KnockbackY
		player.Physics.OnGround = false
	}
	s.hurt(player, enemy, dmg)
}

// OnProjectileHit - снаряд уже погашен системой коллизий
func (s *eventSink) OnProjectileHit(projectile, enemy *domain.Entity) {
	pc := projectile.Projectile
	if pc == nil {
		return
	}
	owner := s.m.world.GetEntity(pc.OwnerID)
	dmg := systems.DealDamage(owner, enemy, pc.Damage)
	if pc.Status != nil {
		systems.ApplyStatus(enemy, *pc.Status)
	}
	if dmg <= 0 {
		return
	}
	s.m.spawnEffect(projectile.Center(), "spark", 8)
	s.m.emit(domain.Event{Type: domain.EventDamageDealt, EntityID: enemy.ID, SourceID: pc.OwnerID, Amount: dmg}.
		With("ability", pc.AbilityID))
}

// OnPickup - игрок подобрал предмет
func (s *eventSink) OnPickup(player, pickup *domain.Entity) {
	kind, amount, err := systems.CollectPickup(player, pickup)
	if err != nil {
		s.m.log.WithError(err).Debug("Pickup skipped")
		return
	}
	m := s.m
	if player.Player != nil {
		m.stats.Credits = player.Player.Credits
	}
	m.state.Score += ScorePickup

	if _, ok := m.pickups[pickup.ID]; ok {
		m.advanceObjective(levels.ObjectiveCollectPickups, 1)
	}
	m.emit(domain.Event{Type: domain.EventItemCollected, EntityID: player.ID, SourceID: pickup.ID, Amount: amount}.
		With("kind", string(kind)))
}

// OnSummonContact - союзник бьет врага с периодом своей атаки
func (s *eventSink) OnSummonContact(summon, enemy *domain.Entity) {
	c := summon.Combat
	if c == nil || c.AttackCooldown > 0 {
		return
	}
	c.AttackCooldown = c.MaxAttackCooldown
	dmg := systems.DealDamage(summon, enemy, c.Damage)
	if dmg > 0 {
		s.m.emit(domain.Event{Type: domain.EventDamageDealt, EntityID: enemy.ID, SourceID: summon.ID, Amount: dmg})
	}
}

// OnDeath - ровно один раз на сущность
func (s *eventSink) OnDeath(e *domain.Entity) {
	m := s.m
	s.m.spawnEffect(e.Center(), "burst", 20)

	if e.Player != nil {
		m.state.GameOver = true
		m.log.WithFields(logrus.Fields{
			"level": m.state.LevelID,
			"score": m.state.Score,
		}).Info("Player died")
		m.emit(domain.Event{Type: domain.EventPlayerDeath, EntityID: e.ID, Level: m.state.LevelID})
		return
	}
	if e.AI == nil {
		return
	}

	isBoss := e.Boss != nil
	if isBoss {
		m.state.Score += ScoreBossKill
		m.advanceObjective(levels.ObjectiveKillBoss, 1)
		// Миньоны, которые еще не вышли, уже не появятся
		for _, it := range m.spawns.PopDue(math.Inf(1)) {
			m.log.WithField("spawn_id", it.ID).Debug("Pending minion cancelled")
		}
	} else {
		m.state.Score += ScoreEnemyKill
	}
	m.advanceObjective(levels.ObjectiveKillAll, 1)

	xp := 0
	if e.Loot != nil {
		xp = e.Loot.Experience
		if drop := systems.CreateLootDrop(e, utils.GenerateID("loot_"), m.rng.Float64()); drop != nil {
			if err := m.world.Spawn(drop); err != nil {
				m.log.WithError(err).Warn("Loot drop lost")
			}
		}
	}

	m.emit(domain.Event{Type: domain.EventEnemyDeath, EntityID: e.ID, SourceID: m.state.PlayerID, Amount: float64(xp)}.
		With("boss", isBoss))
	m.AddExperience(xp)
}

// OnEnemyAttack - удар врага из состояния attack
func (s *eventSink) OnEnemyAttack(enemy, target *domain.Entity, damage float64) {
	if damage <= 0 {
		return
	}
	s.hurt(target, enemy, damage)
}

// OnBossEnrage - вторая фаза босса
func (s *eventSink) OnBossEnrage(boss *domain.Entity) {
	s.m.spawnEffect(boss.Center(), "rage", 30)
	s.m.log.WithField("boss_id", boss.ID).Info("Boss enraged")
}

func (s *eventSink) hurt(target, source *domain.Entity, dmg float64) {
	if target.Animation != nil {
		target.Animation.Play("hurt", HurtLock)
	}
	s.m.emit(domain.Event{Type: domain.EventDamageDealt, EntityID: target.ID, SourceID: source.ID, Amount: dmg})
}
