// internal/event/types.go
package event

const (
	EnemySpawned    EventType = "EnemySpawned"
	EnemyKilled     EventType = "EnemyKilled" // Враг уничтожен уроном, Data: KillInfo
	EnemyLeaked     EventType = "EnemyLeaked" // Враг дошёл до конца маршрута
	WaveStarted     EventType = "WaveStarted"
	WaveEnded       EventType = "WaveEnded" // Волна закончилась, Data: WaveInfo
	TowerPlaced     EventType = "TowerPlaced"
	TowerSold       EventType = "TowerSold"
	TowerUpgraded   EventType = "TowerUpgraded"
	ProjectileFired EventType = "ProjectileFired"
	GameOver        EventType = "GameOver"
)
