package component

// SpawnEntry - один враг в очереди появления и задержка перед ним (секунды).
type SpawnEntry struct {
	EnemyID string
	Delay   float64
}

// Wave - состояние текущей волны.
type Wave struct {
	Number     int
	InProgress bool
	Queue      []SpawnEntry
	SpawnTimer float64
	Bonus      int
}
