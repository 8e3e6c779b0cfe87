package entity

import (
	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/yohamta/donburi"
)

// NewArena centres a boss arena on spawnX.
func NewArena(spawnX float64) components.BossData {
	return components.BossData{
		MinX: spawnX - cfg.Boss.ArenaHalfWidth,
		MaxX: spawnX + cfg.Boss.ArenaHalfWidth,
	}
}

// ClampToArena keeps a boss inside its arena. Hitting a bound stops it and
// turns it back toward the middle.
func ClampToArena(e *donburi.Entry) {
	arena := components.Boss.Get(e)
	body := components.Body.Get(e)
	switch {
	case body.X < arena.MinX:
		body.X = arena.MinX
		body.VX = 0
		body.Facing = 1
	case body.X > arena.MaxX:
		body.X = arena.MaxX
		body.VX = 0
		body.Facing = -1
	}
}

// LockPlayer shuts the player into the arena once they are past its entry
// line. It reports whether the lock engaged on this call.
func LockPlayer(w donburi.World, boss, player *donburi.Entry) bool {
	arena := components.Boss.Get(boss)
	if arena.PlayerLocked || !Alive(boss) {
		return false
	}
	body := components.Body.Get(player)
	if body.X < arena.MinX+cfg.Boss.LockInset {
		return false
	}

	arena.PlayerLocked = true
	p := components.Player.Get(player)
	p.Locked = true
	p.LockMin, p.LockMax = arena.MinX, arena.MaxX

	out := components.GetIntents(w)
	out.HUD.ShowBossBar(true)
	out.HUD.SetBossHealth(components.Health.Get(boss).Percent())
	out.Audio.Play(cfg.SoundBossRoar)
	logger.Info("arena locked", "min", arena.MinX, "max", arena.MaxX)
	return true
}

// ClampLockedPlayer holds a locked player inside the arena bounds.
func ClampLockedPlayer(e *donburi.Entry) {
	p := components.Player.Get(e)
	if !p.Locked {
		return
	}
	body := components.Body.Get(e)
	if body.X < p.LockMin {
		body.X = p.LockMin
		body.VX = max(body.VX, 0)
	}
	if body.X > p.LockMax {
		body.X = p.LockMax
		body.VX = min(body.VX, 0)
	}
}

// BossRemoved releases the arena and starts the level's victory. It reports
// whether victory was triggered.
func BossRemoved(w donburi.World) bool {
	out := components.GetIntents(w)
	out.HUD.ShowBossBar(false)
	if pe, ok := Player(w); ok {
		components.Player.Get(pe).Locked = false
	}
	d := Director(w)
	if d == nil {
		return false
	}
	return d.TriggerVictory()
}
