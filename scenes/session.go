package scenes

import (
	cfg "github.com/automoto/treasure-hunters/config"
	"github.com/automoto/treasure-hunters/systems"
)

// Session is the game state that outlives a single level: health, coins
// and the highest unlocked level. Levels report to it through the
// components.Callbacks interface.
type Session struct {
	ctx     *Context
	changer SceneChanger

	maxHealth int
	health    int
	coins     int
	maxLevel  int
	finished  bool
}

func NewSession(ctx *Context, changer SceneChanger) *Session {
	return &Session{
		ctx:       ctx,
		changer:   changer,
		maxHealth: cfg.Session.MaxHealth,
		health:    cfg.Session.MaxHealth,
		maxLevel:  cfg.Session.StartMaxLevel,
	}
}

// ChangeHealth applies amount unless it would heal a player already at
// full health. Health may go above max through a heal that starts below
// it.
func (s *Session) ChangeHealth(amount int) {
	if s.health != s.maxHealth || amount < 0 {
		s.health += amount
	}
}

func (s *Session) ChangeCoins(amount int) {
	s.coins += amount
}

// LevelComplete returns to the map on level, unlocking up to unlock.
// Unlocking the final level ends the game.
func (s *Session) LevelComplete(level, unlock int) {
	s.ctx.Log.Info("level complete", "level", level, "unlock", unlock)
	if unlock == cfg.Session.FinalUnlock {
		s.finished = true
		return
	}
	if unlock > s.maxLevel {
		s.maxLevel = unlock
	}
	s.CreateOverworld(level)
}

func (s *Session) Health() (current, max int) {
	return s.health, s.maxHealth
}

func (s *Session) Coins() int {
	return s.coins
}

func (s *Session) MaxLevel() int {
	return s.maxLevel
}

// Finished reports whether the final level was cleared.
func (s *Session) Finished() bool {
	return s.finished
}

// CreateLevel switches to level id with the level music.
func (s *Session) CreateLevel(id int) {
	s.ctx.Log.Info("entering level", "level", id)
	s.changer.ChangeScene(NewLevelScene(s.ctx, s, id))
	systems.PlayMusic(cfg.Sound.LevelMusic)
}

// CreateOverworld switches to the level select map with the icon on node
// current.
func (s *Session) CreateOverworld(current int) {
	s.changer.ChangeScene(NewOverworldScene(s.ctx, s, current))
	systems.PlayMusic(cfg.Sound.OverworldMusic)
}

// CheckGameOver restarts from the first level with fresh stats once
// health has run out. It reports whether it did.
func (s *Session) CheckGameOver() bool {
	if s.health > 0 {
		return false
	}
	s.ctx.Log.Info("game over", "coins", s.coins)
	s.health = s.maxHealth
	s.coins = 0
	s.maxLevel = 0
	s.CreateOverworld(0)
	return true
}
