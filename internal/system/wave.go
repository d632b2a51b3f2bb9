// internal/system/wave.go
package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/tilemap"
	"log"
)

// WaveSystem - планировщик появления врагов и жизненный цикл волны.
type WaveSystem struct {
	ecs             *entity.ECS
	tileMap         *tilemap.TileMap
	catalog         *defs.Catalog
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, tileMap *tilemap.TileMap, catalog *defs.Catalog, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		tileMap:         tileMap,
		catalog:         catalog,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// StartWave expands the next wave into a shuffled spawn queue.
// It returns false, changing nothing, while a wave is already in progress.
func (s *WaveSystem) StartWave() (defs.WaveDefinition, bool) {
	wave := s.ecs.Wave
	if wave.InProgress {
		return defs.WaveDefinition{}, false
	}

	waveDef := defs.GenerateWave(wave.Number + 1)
	queue := make([]component.SpawnEntry, 0, waveDef.TotalEnemies())
	for _, group := range waveDef.Groups {
		for i := 0; i < group.Count; i++ {
			queue = append(queue, component.SpawnEntry{
				EnemyID: group.EnemyID,
				Delay:   group.SpawnInterval.Seconds(),
			})
		}
	}
	// Перемешиваем очередь один раз; задержка путешествует вместе с записью
	s.rng.Shuffle(len(queue), func(i, j int) { queue[i], queue[j] = queue[j], queue[i] })

	wave.Number = waveDef.Number
	wave.InProgress = true
	wave.Queue = queue
	wave.SpawnTimer = 0
	wave.Bonus = waveDef.Bonus

	log.Printf("Wave %d started: %d enemies", waveDef.Number, len(queue))
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveInfo{Number: waveDef.Number, Enemies: len(queue), Bonus: waveDef.Bonus},
	})
	return waveDef, true
}

// Update releases at most one enemy per tick once the head entry's delay has elapsed.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if !wave.InProgress || len(wave.Queue) == 0 {
		return
	}
	wave.SpawnTimer += deltaTime
	next := wave.Queue[0]
	if wave.SpawnTimer >= next.Delay {
		wave.SpawnTimer = 0
		wave.Queue = wave.Queue[1:]
		s.spawnEnemy(next.EnemyID)
	}
}

// CheckCompletion ends the wave once the queue is drained and no enemy is alive.
func (s *WaveSystem) CheckCompletion() {
	wave := s.ecs.Wave
	if !wave.InProgress || len(wave.Queue) > 0 || len(s.ecs.Enemies) > 0 {
		return
	}
	wave.InProgress = false
	log.Printf("Wave %d complete, bonus %d", wave.Number, wave.Bonus)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveEnded,
		Data: event.WaveInfo{Number: wave.Number, Bonus: wave.Bonus},
	})
}

func (s *WaveSystem) spawnEnemy(enemyID string) {
	def, ok := s.catalog.Enemy(enemyID)
	if !ok {
		log.Printf("Error: Enemy definition not found for ID: %s", enemyID)
		return
	}

	id := s.ecs.NewEntity()
	start := s.tileMap.Route.Start()
	health := def.HealthAt(s.ecs.Wave.Number)
	s.ecs.Positions[id] = &component.Position{X: start.X, Y: start.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	s.ecs.Paths[id] = &component.Path{}
	s.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	s.ecs.Enemies[id] = &component.Enemy{
		DefID:   enemyID,
		Reward:  def.Reward + s.ecs.Wave.Number*config.RewardPerWave,
		Ability: def.Ability,
		Size:    def.Size,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: id})
}
