package runner

import (
	"fmt"
	"image/color"

	"github.com/automoto/ghouls-n-orcs/combat"
	"github.com/automoto/ghouls-n-orcs/components"
	"github.com/automoto/ghouls-n-orcs/entity"
	"github.com/automoto/ghouls-n-orcs/intents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const (
	hudMargin     = 10
	pipSize       = 14
	pipGap        = 4
	bossBarWidth  = 300
	bossBarHeight = 10
	bossBarTween  = 0.3
)

var (
	colorPipFull  = color.RGBA{200, 200, 220, 255}
	colorPipEmpty = color.RGBA{60, 60, 70, 255}
	colorBarBG    = color.RGBA{40, 40, 40, 255}
	colorBarFG    = color.RGBA{190, 40, 40, 255}
	colorShade    = color.RGBA{0, 0, 0, 160}
)

// HUD draws armor pips, the boss bar and overlay panels. The boss bar
// eases toward each new value instead of jumping.
type HUD struct {
	armor, maxArmor int

	bossVisible bool
	bossShown   float64
	bossTween   *gween.Tween

	panel     intents.Panel
	panelOpen bool
}

func NewHUD() *HUD {
	return &HUD{bossShown: 100}
}

func (h *HUD) SetArmor(n, total int) { h.armor, h.maxArmor = n, total }
func (h *HUD) ShowBossBar(v bool)    { h.bossVisible = v }
func (h *HUD) HidePanel()            { h.panelOpen = false }

func (h *HUD) SetBossHealth(pct float64) {
	h.bossTween = gween.New(float32(h.bossShown), float32(pct), bossBarTween, ease.OutCubic)
}

func (h *HUD) ShowPanel(kind intents.PanelKind, text string) {
	h.panel = intents.Panel{Kind: kind, Text: text}
	h.panelOpen = true
}

// Update advances the boss bar tween by one rendered frame.
func (h *HUD) Update(dt float64) {
	if h.bossTween == nil {
		return
	}
	v, done := h.bossTween.Update(float32(dt))
	h.bossShown = float64(v)
	if done {
		h.bossTween = nil
	}
}

func (h *HUD) Draw(screen *ebiten.Image, w donburi.World, levelName string) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	for i := range h.maxArmor {
		clr := colorPipEmpty
		if i < h.armor {
			clr = colorPipFull
		}
		x := float32(hudMargin + i*(pipSize+pipGap))
		vector.FillRect(screen, x, hudMargin, pipSize, pipSize, clr, false)
	}

	status := levelName
	if pe, ok := entity.Player(w); ok {
		weapon := combat.EquippedWeapon(components.Player.Get(pe))
		status = fmt.Sprintf("%s  weapon: %s", levelName, weapon)
	}
	ebitenutil.DebugPrintAt(screen, status, hudMargin, hudMargin+pipSize+pipGap)

	if h.bossVisible {
		x := (width - bossBarWidth) / 2
		y := height - hudMargin - bossBarHeight
		vector.FillRect(screen, x, y, bossBarWidth, bossBarHeight, colorBarBG, false)
		vector.FillRect(screen, x, y, bossBarWidth*float32(h.bossShown/100), bossBarHeight, colorBarFG, false)
	}

	if h.panelOpen {
		vector.FillRect(screen, 0, height/2-30, width, 60, colorShade, false)
		ebitenutil.DebugPrintAt(screen, h.panel.Text, int(width/2)-len(h.panel.Text)*3, int(height/2)-8)
	}
}
