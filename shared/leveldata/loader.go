package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lafriks/go-tiled"
)

// TerrainLayer is the preferred tile layer name in Tiled maps.
const TerrainLayer = "terrain"

// LoadTMX converts a Tiled map into symbol rows. Every tileset tile used by
// the terrain layer must carry a one-character "symbol" property. Empty cells
// become sea. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) ([]string, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("TMX %s: %w", tmxPath, ErrEmptyMap)
	}

	layer := levelMap.Layers[0]
	for _, l := range levelMap.Layers {
		if l.Name == TerrainLayer {
			layer = l
			break
		}
	}

	rows := make([]string, levelMap.Height)
	var sb strings.Builder
	for y := 0; y < levelMap.Height; y++ {
		sb.Reset()
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				sb.WriteRune(SymSea)
				continue
			}
			sym, err := tileSymbol(tile)
			if err != nil {
				return nil, fmt.Errorf("TMX %s at (%d, %d): %w", tmxPath, x, y, err)
			}
			sb.WriteRune(sym)
		}
		rows[y] = sb.String()
	}
	return rows, nil
}

func tileSymbol(tile *tiled.LayerTile) (rune, error) {
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return 0, fmt.Errorf("tile %d: %w", tile.ID, err)
	}
	s := tilesetTile.Properties.GetString("symbol")
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("tile %d: symbol property %q is not one character", tile.ID, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// LoadText reads a plain text map from fsys.
func LoadText(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open map %s: %w", name, err)
	}
	defer f.Close()
	rows, err := ParseText(f)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", name, err)
	}
	return rows, nil
}

// LoadAll discovers every .txt and .tmx map in dir and returns them sorted by
// name. The sort order is the level sequence.
func LoadAll(fsys fs.FS, dir string) ([]Source, error) {
	var matches []string
	for _, ext := range []string{"*.txt", "*.tmx"} {
		pattern := path.Join(dir, ext)
		m, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}
	sort.Strings(matches)

	sources := make([]Source, 0, len(matches))
	for _, p := range matches {
		var rows []string
		var err error
		if strings.HasSuffix(p, ".tmx") {
			rows, err = LoadTMX(fsys, p)
		} else {
			rows, err = LoadText(fsys, p)
		}
		if err != nil {
			return nil, err
		}
		sources = append(sources, Source{Name: stem(p), Rows: rows})
	}
	return sources, nil
}

func stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
