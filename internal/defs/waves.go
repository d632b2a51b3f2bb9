package defs

import (
	"math"
	"time"
)

const (
	EnemyGooner   = "gooner"
	EnemyEdgelord = "edgelord"
	EnemyChonker  = "chonker"
	EnemyCopium   = "copium"
	EnemyBoss     = "final_boss"

	BossWavePeriod = 10
)

// WaveGroup - группа одинаковых врагов с общим интервалом появления.
type WaveGroup struct {
	EnemyID       string
	Count         int
	SpawnInterval time.Duration
}

// WaveDefinition описывает состав одной волны и бонус за её прохождение.
type WaveDefinition struct {
	Number int
	Groups []WaveGroup
	Bonus  int
}

// TotalEnemies returns the number of enemies across all groups.
func (w WaveDefinition) TotalEnemies() int {
	total := 0
	for _, g := range w.Groups {
		total += g.Count
	}
	return total
}

// WaveEnemyIDs lists every enemy kind GenerateWave can emit.
func WaveEnemyIDs() []string {
	return []string{EnemyGooner, EnemyEdgelord, EnemyChonker, EnemyCopium, EnemyBoss}
}

// GenerateWave is a pure function of the 1-based wave number.
// Numbers below 1 are treated as 1.
func GenerateWave(n int) WaveDefinition {
	if n < 1 {
		n = 1
	}
	wave := WaveDefinition{Number: n, Bonus: 50 + n*15}

	// Базовые враги есть всегда; интервал сокращается до 400 мс
	wave.Groups = append(wave.Groups, WaveGroup{
		EnemyID:       EnemyGooner,
		Count:         5 + floorMul(n, 1.5),
		SpawnInterval: ms(max(400, 800-n*20)),
	})

	if n >= 3 {
		wave.Groups = append(wave.Groups, WaveGroup{
			EnemyID:       EnemyEdgelord,
			Count:         2 + floorMul(n, 0.8),
			SpawnInterval: ms(300),
		})
	}
	if n >= 5 {
		wave.Groups = append(wave.Groups, WaveGroup{
			EnemyID:       EnemyChonker,
			Count:         1 + floorMul(n-4, 0.5),
			SpawnInterval: ms(1500),
		})
	}
	if n >= 8 {
		wave.Groups = append(wave.Groups, WaveGroup{
			EnemyID:       EnemyCopium,
			Count:         1 + floorMul(n-7, 0.3),
			SpawnInterval: ms(2000),
		})
	}
	if n%BossWavePeriod == 0 {
		wave.Groups = append(wave.Groups, WaveGroup{
			EnemyID:       EnemyBoss,
			Count:         n / BossWavePeriod,
			SpawnInterval: ms(3000),
		})
	}
	return wave
}

func floorMul(n int, f float64) int {
	return int(math.Floor(float64(n) * f))
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
