package levels

import (
	"fmt"
	"math/rand"
	"new-haven-server/internal/domain"
	"new-haven-server/pkg/utils"
)

// LevelBuilder - fluent API сборки уровня. Порядок вызовов фиксирован
// генератором: от него зависит последовательность чисел из rng.
type LevelBuilder struct {
	data    *LevelData
	env     environmentInfo
	groundY float64
	rng     *rand.Rand
}

// NewLevel создает builder для уровня id
func NewLevel(id int, rng *rand.Rand) *LevelBuilder {
	env := environmentFor(id)
	diff := DifficultyFor(id)
	return &LevelBuilder{
		data: &LevelData{
			ID:          id,
			Name:        fmt.Sprintf("%s %d", env.Title, id),
			Description: env.Description,
			Environment: env.Env,
			Difficulty:  diff,
			IsBossLevel: IsBossLevel(id),
		},
		env: env,
		rng: rng,
	}
}

// WithBounds задает размеры и зону смерти под уровнем
func (b *LevelBuilder) WithBounds() *LevelBuilder {
	width := LevelWidth(b.data.ID)
	b.data.Bounds = Bounds{
		Width:  width,
		Height: LevelHeight,
		DeathZones: []domain.Rect{
			{X: -500, Y: LevelHeight, W: width + 1000, H: 500},
		},
	}
	b.groundY = LevelHeight - GroundThickness
	b.data.PlayerSpawn = domain.Vec2{X: 100, Y: b.groundY - domain.PlayerHeight}
	return b
}

// WithPlatforms - земля плюс парящие платформы
func (b *LevelBuilder) WithPlatforms() *LevelBuilder {
	width := b.data.Bounds.Width
	b.data.Platforms = append(b.data.Platforms, PlatformSpec{
		ID:       "platform_ground",
		Bounds:   domain.Rect{X: 0, Y: b.groundY, W: width, H: GroundThickness},
		Material: b.env.Material,
	})

	count := FloatingPlatformCount(b.data.ID)
	step := (width - 600) / float64(count)
	for i := 0; i < count; i++ {
		x := 300 + float64(i)*step + utils.RandFloat(b.rng, 0, 80)
		y := b.groundY - 120 - float64(i%3)*90 - utils.RandFloat(b.rng, 0, 30)
		w := 120 + utils.RandFloat(b.rng, 0, 80)
		b.data.Platforms = append(b.data.Platforms, PlatformSpec{
			ID:       fmt.Sprintf("platform_%d", i),
			Bounds:   domain.Rect{X: x, Y: y, W: w, H: 20},
			OneWay:   b.data.ID > OneWayFromLvl,
			Material: b.env.Material,
		})
	}
	return b
}

// WithEnemies - рядовые враги с патрулем либо босс с миньонами
func (b *LevelBuilder) WithEnemies() *LevelBuilder {
	id := b.data.ID
	if b.data.IsBossLevel {
		x := b.data.Bounds.Width * 0.75
		boss := Boss.Spawn(id, b.env.Boss, "boss", x, b.groundY)
		b.data.Enemies = append(b.data.Enemies, boss)

		for i, delay := range MinionDelays {
			kind := b.env.Enemies[i%len(b.env.Enemies)]
			mx := x - 150 + float64(i)*150
			m := Minion.Spawn(id, kind, fmt.Sprintf("minion_%d", i), mx, b.groundY)
			m.SpawnDelay = delay
			b.data.Enemies = append(b.data.Enemies, m)
		}
		return b
	}

	count := RegularEnemyCount(id)
	spacing := (b.data.Bounds.Width - 2*EnemyStartX) / float64(count)
	for i := 0; i < count; i++ {
		kind := b.env.Enemies[b.rng.Intn(len(b.env.Enemies))]
		x := EnemyStartX + float64(i)*spacing + utils.RandFloat(b.rng, 0, EnemyJitter)
		e := Grunt.Spawn(id, kind, fmt.Sprintf("enemy_%d", i), x, b.groundY)
		e.PatrolPath = []domain.Vec2{
			{X: x - PatrolRadius, Y: e.Position.Y},
			{X: x + PatrolRadius, Y: e.Position.Y},
		}
		b.data.Enemies = append(b.data.Enemies, e)
	}
	return b
}

// WithPickups раскладывает аптечки, ману и кредиты над парящими платформами и землей
func (b *LevelBuilder) WithPickups() *LevelBuilder {
	health, mana, credits := PickupCounts(b.data.ID)
	n := 0
	place := func(kind domain.LootKind, amount float64, count int) {
		for i := 0; i < count; i++ {
			pos := b.pickupSpot()
			b.data.Pickups = append(b.data.Pickups, PickupSpec{
				ID:       fmt.Sprintf("pickup_%d", n),
				Kind:     kind,
				Amount:   amount,
				Position: pos,
			})
			n++
		}
	}
	place(domain.LootHealth, 25, health)
	place(domain.LootMana, 20, mana)
	place(domain.LootCredits, float64(10+b.data.ID), credits)
	return b
}

// pickupSpot - над случайной платформой (включая землю)
func (b *LevelBuilder) pickupSpot() domain.Vec2 {
	p := b.data.Platforms[b.rng.Intn(len(b.data.Platforms))].Bounds
	x := p.X + utils.RandFloat(b.rng, 0, max(1, p.W-16))
	if p.Y == b.groundY {
		x = utils.RandFloat(b.rng, 200, b.data.Bounds.Width-200)
	}
	return domain.Vec2{X: x, Y: p.Y - 24}
}

// WithObjectives - цели уровня
func (b *LevelBuilder) WithObjectives() *LevelBuilder {
	if b.data.IsBossLevel {
		b.data.Objectives = append(b.data.Objectives, Objective{
			Type:        ObjectiveKillBoss,
			Description: "Defeat " + b.env.Boss,
			Target:      1,
		})
	} else {
		b.data.Objectives = append(b.data.Objectives, Objective{
			Type:        ObjectiveKillAll,
			Description: "Eliminate all hostiles",
			Target:      len(b.data.Enemies),
		})
	}
	if len(b.data.Pickups) > 0 {
		b.data.Objectives = append(b.data.Objectives, Objective{
			Type:        ObjectiveCollectPickups,
			Description: "Collect all supplies",
			Target:      len(b.data.Pickups),
			Optional:    true,
		})
	}
	return b
}

// WithAtmosphere - освещение и погода
func (b *LevelBuilder) WithAtmosphere() *LevelBuilder {
	palette := make([]string, len(b.env.Palette))
	copy(palette, b.env.Palette)
	b.data.Lighting = Lighting{
		Ambient:   b.env.Ambient,
		Palette:   palette,
		Intensity: lightIntensity[b.data.Difficulty],
		Flicker:   b.data.ID > FlickerFromLvl,
	}
	b.data.Weather = Weather{
		Effect:    b.env.Weather,
		Intensity: weatherIntensity[b.data.Difficulty],
	}
	if b.env.Weather == "none" {
		b.data.Weather.Intensity = 0
	}
	return b
}

// Build возвращает собранный уровень
func (b *LevelBuilder) Build() *LevelData {
	return b.data
}
