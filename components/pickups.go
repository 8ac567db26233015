package components

import "github.com/yohamta/donburi"

type CoinData struct {
	Value int
}

var Coin = donburi.NewComponentType[CoinData]()
