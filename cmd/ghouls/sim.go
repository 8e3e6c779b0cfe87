package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/automoto/ghouls-n-orcs/components"
	cfg "github.com/automoto/ghouls-n-orcs/config"
	"github.com/automoto/ghouls-n-orcs/game"
	"github.com/automoto/ghouls-n-orcs/intents"
)

var flagSeconds float64

var simCmd = &cobra.Command{
	Use:   "sim [level]",
	Short: "Run a headless autopilot and print a summary",
	Long: `Run the simulation without a window. The autopilot holds right,
throws on a fixed beat, jumps now and then and confirms every panel.
The same seed always produces the same summary.

Examples:
  ghouls sim
  ghouls sim graveyard --seconds 120 --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSeconds, "seconds", 30, "Simulated seconds to run")
}

// autopilot drives a scripted input from the step counter alone.
type autopilot struct {
	in *intents.Scripted
}

func (a autopilot) drive(step uint64, status components.GameStatus) {
	a.in.SetAxis(1)
	a.in.Press(cfg.ActionMoveRight)

	switch {
	case status == components.StatusGameOver || status == components.StatusVictory:
		if step%30 == 0 {
			a.in.Tap(cfg.ActionRestart)
		}
	case step%20 == 0:
		a.in.Tap(cfg.ActionAttackPrimary)
	case step%90 == 45:
		a.in.Tap(cfg.ActionJump)
	case step%240 == 120:
		a.in.Tap(cfg.ActionAttackSecondary)
	}
}

type simSummary struct {
	level      string
	steps      uint64
	seconds    float64
	status     components.GameStatus
	playerX    float64
	armor      int
	kills      int
	armorLost  int
	deaths     int
	throws     int
	checkpoint int
	victories  int
}

func runSim(cmd *cobra.Command, args []string) error {
	r, err := loadRegistry()
	if err != nil {
		return err
	}

	rec := intents.NewRecorder()
	in := intents.NewScripted()
	s := game.NewSession(r, intents.Surfaces{
		Renderer: rec,
		Audio:    rec,
		HUD:      rec,
		Input:    in,
	}, flagSeed)

	if len(args) == 1 {
		err = s.LoadLevel(args[0])
	} else {
		err = s.Start()
	}
	if err != nil {
		return err
	}

	pilot := autopilot{in: in}
	total := uint64(flagSeconds / cfg.Physics.FixedStep)
	for s.Steps() < total {
		pilot.drive(s.Steps(), s.Status())
		s.Step()
	}

	sum := simSummary{
		level:      s.Director().Level().ID,
		steps:      s.Steps(),
		seconds:    s.Time(),
		status:     s.Status(),
		kills:      rec.Played(cfg.SoundEnemyDeath),
		armorLost:  rec.Played(cfg.SoundArmorBreak),
		deaths:     rec.Played(cfg.SoundDeath),
		throws:     rec.Played(cfg.SoundThrow),
		checkpoint: rec.Played(cfg.SoundCheckpoint),
		victories:  rec.Played(cfg.SoundVictory),
	}
	if pe, ok := s.Player(); ok {
		sum.playerX = components.Body.Get(pe).X
		sum.armor = components.Health.Get(pe).Current
	}
	fmt.Println(renderSummary(sum))
	return nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func renderSummary(s simSummary) string {
	rows := [][2]string{
		{"level", s.level},
		{"status", s.status.String()},
		{"steps", fmt.Sprint(s.steps)},
		{"game time", fmt.Sprintf("%.2fs", s.seconds)},
		{"player x", fmt.Sprintf("%.2f", s.playerX)},
		{"armor", fmt.Sprint(s.armor)},
		{"throws", fmt.Sprint(s.throws)},
		{"kills", fmt.Sprint(s.kills)},
		{"armor lost", fmt.Sprint(s.armorLost)},
		{"deaths", fmt.Sprint(s.deaths)},
		{"checkpoints", fmt.Sprint(s.checkpoint)},
		{"victories", fmt.Sprint(s.victories)},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("simulation"))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(r[0]) + valueStyle.Render(r[1]))
	}
	return boxStyle.Render(b.String())
}
