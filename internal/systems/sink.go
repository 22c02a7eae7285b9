package systems

import (
	"new-haven-server/internal/domain"
)

// Sink - получатель событий систем. Его реализует менеджер игры,
// системы сами ничего не знают о слое представления.
type Sink interface {
	// OnContact - игрок коснулся врага
	OnContact(player, enemy *domain.Entity)
	// OnProjectileHit - снаряд попал во врага (снаряд уже деактивирован)
	OnProjectileHit(projectile, enemy *domain.Entity)
	// OnPickup - игрок коснулся пикапа
	OnPickup(player, pickup *domain.Entity)
	// OnSummonContact - призванный союзник коснулся врага
	OnSummonContact(summon, enemy *domain.Entity)
	// OnDeath - сущность погибла (вызывается ровно один раз)
	OnDeath(e *domain.Entity)
	// OnEnemyAttack - враг провел атаку из состояния attack
	OnEnemyAttack(enemy, target *domain.Entity, damage float64)
	// OnBossEnrage - босс перешел во вторую фазу
	OnBossEnrage(boss *domain.Entity)
}

// NopSink глотает все события (тесты, инструменты)
type NopSink struct{}

func (NopSink) OnContact(_, _ *domain.Entity)                {}
func (NopSink) OnProjectileHit(_, _ *domain.Entity)          {}
func (NopSink) OnPickup(_, _ *domain.Entity)                 {}
func (NopSink) OnSummonContact(_, _ *domain.Entity)          {}
func (NopSink) OnDeath(_ *domain.Entity)                     {}
func (NopSink) OnEnemyAttack(_, _ *domain.Entity, _ float64) {}
func (NopSink) OnBossEnrage(_ *domain.Entity)                {}

func sinkOrNop(s Sink) Sink {
	if s == nil {
		return NopSink{}
	}
	return s
}
