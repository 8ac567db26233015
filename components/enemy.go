package components

import "github.com/yohamta/donburi"

// EnemyData is a walker. The sign of Speed is its heading.
type EnemyData struct {
	Speed float64
}

func (e *EnemyData) Reverse() {
	e.Speed = -e.Speed
}

var Enemy = donburi.NewComponentType[EnemyData]()
