package assets

import (
	"embed"
	"io/fs"
	"sort"

	"github.com/automoto/tkuet-fighter/shared/leveldata"
)

var (
	//go:embed all:stages
	assetFS embed.FS
)

// Stages lists the embedded stage files
func Stages() []string {
	matches, err := fs.Glob(assetFS, "stages/*.tmx")
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// LoadStage parses an embedded stage file
func LoadStage(path string) (*leveldata.StageData, error) {
	return leveldata.LoadStage(assetFS, path)
}
