package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadStage parses a TMX file and returns its platforms and spawn points. It
// takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadStage(fsys fs.FS, tmxPath string) (*StageData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapW := float64(levelMap.Width * levelMap.TileWidth)
	mapH := float64(levelMap.Height * levelMap.TileHeight)
	if mapW <= 0 || mapH <= 0 {
		return nil, fmt.Errorf("load TMX %s: empty map", tmxPath)
	}

	data := &StageData{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.Platforms = append(data.Platforms, PlatformSpec{
					FX: o.X / mapW,
					FY: o.Y / mapH,
					W:  o.Width,
					H:  o.Height,
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					FX:    o.X / mapW,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(data.Platforms) == 0 {
		return nil, fmt.Errorf("load TMX %s: no Platforms object group", tmxPath)
	}

	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].Index < data.SpawnPoints[j].Index
	})

	return data, nil
}
