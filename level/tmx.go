package level

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/ghouls-n-orcs/geometry"
	"github.com/lafriks/go-tiled"
)

// Object group names read from Tiled maps.
const (
	groupPlatforms   = "Platforms"
	groupSpawners    = "EnemySpawn"
	groupPlayer      = "PlayerSpawn"
	groupCheckpoints = "Checkpoint"
	groupMeta        = "Meta"
)

// LoadTMX builds a level from a Tiled map. One tile is one world unit and
// the map's bottom-left corner is the world origin, so pixel y is flipped.
// The level id defaults to the file stem.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	conv := pixelConverter{
		tileW:  float64(levelMap.TileWidth),
		tileH:  float64(levelMap.TileHeight),
		height: float64(levelMap.Height * levelMap.TileHeight),
	}
	if conv.tileW <= 0 || conv.tileH <= 0 {
		return nil, fmt.Errorf("%w: %s: tile size must be positive", ErrInvalidLevel, tmxPath)
	}

	l := &Level{
		ID:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Length: float64(levelMap.Width),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlatforms:
			for _, o := range og.Objects {
				kind := geometry.Kind(o.Class)
				if kind == "" {
					kind = geometry.Kind(o.Type) //nolint:staticcheck // older maps use type=
				}
				if kind != geometry.KindGround {
					kind = geometry.KindPlatform
				}
				minX, maxY := conv.point(o.X, o.Y)
				w, h := o.Width/conv.tileW, o.Height/conv.tileH
				l.Platforms = append(l.Platforms, Platform{
					X:    minX + w/2,
					Y:    maxY - h/2,
					W:    w,
					H:    h,
					Type: kind,
				})
			}
		case groupSpawners:
			for _, o := range og.Objects {
				x, _ := conv.point(o.X, o.Y)
				l.Spawners = append(l.Spawners, Spawner{
					X:           x,
					Type:        o.Properties.GetString("enemyType"),
					TriggerDist: o.Properties.GetFloat("triggerDist"),
				})
			}
		case groupPlayer:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				x, y := conv.point(o.X, o.Y)
				l.PlayerSpawn = Point{X: x, Y: y}
			}
		case groupCheckpoints:
			for _, o := range og.Objects {
				x, y := conv.point(o.X, o.Y)
				l.Checkpoints = append(l.Checkpoints, Point{X: x, Y: y})
			}
		case groupMeta:
			for _, o := range og.Objects {
				if id := o.Properties.GetString("id"); id != "" {
					l.ID = id
				}
				if o.Name != "" {
					l.Name = o.Name
				}
				l.Next = o.Properties.GetString("next")
				l.HasBoss = o.Properties.GetBool("hasBoss")
			}
		}
	}

	// Spawners fire in x order regardless of how the map was drawn.
	sort.SliceStable(l.Spawners, func(i, j int) bool {
		return l.Spawners[i].X < l.Spawners[j].X
	})

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return l, nil
}

// LoadTMXDir loads every .tmx file in dir into r.
func (r *Registry) LoadTMXDir(fsys fs.FS, dir string) error {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)

	for _, path := range matches {
		l, err := LoadTMX(fsys, path)
		if err != nil {
			return err
		}
		if err := r.Add(l); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return r.Validate()
}

type pixelConverter struct {
	tileW, tileH float64
	height       float64
}

// point converts a Tiled pixel position (y down) to world units (y up).
func (c pixelConverter) point(px, py float64) (x, y float64) {
	return px / c.tileW, (c.height - py) / c.tileH
}
