// Package levels embeds the built-in level sequence. It has no dependency on
// ebiten so every front-end can share it.
package levels

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/tidewalker/shared/leveldata"
)

//go:embed *.txt *.tmx
var levelFS embed.FS

// FS exposes the embedded level files.
func FS() fs.FS { return levelFS }

// Load returns the built-in levels in play order.
func Load() ([]leveldata.Source, error) {
	return leveldata.LoadAll(levelFS, ".")
}

// MustLoad is Load for startup code.
func MustLoad() []leveldata.Source {
	sources, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return sources
}
