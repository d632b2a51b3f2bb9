package event

import "go-wave-defense/internal/types"

// KillInfo is the payload of EnemyKilled.
type KillInfo struct {
	EnemyID types.EntityID
	DefID   string
	Reward  int
	TowerID types.EntityID // может ссылаться на уже проданную башню
	X, Y    float64
}

// WaveInfo is the payload of WaveStarted and WaveEnded.
type WaveInfo struct {
	Number  int
	Enemies int
	Bonus   int
}
