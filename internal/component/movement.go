// component/movement.go
package component

// Position - компонент позиции
type Position struct {
	X, Y float64
}

// Velocity хранит базовую скорость вида врага; текущая скорость вычисляется каждый тик.
type Velocity struct {
	Speed float64
}

// Path - положение на маршруте: индекс отрезка и доля пройденного пути в [0, 1).
type Path struct {
	Segment  int
	Progress float64
}

// Score is the "how far along the route" value used for targeting.
func (p *Path) Score() float64 {
	return float64(p.Segment) + p.Progress
}
