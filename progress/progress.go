// Package progress persists results between runs: best scores per level, the
// furthest level reached and audio settings. Mid-level state is never saved.
package progress

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const (
	progressKey = "progress"
	settingsKey = "settings"
)

// SavedProgress represents the campaign results stored on disk
type SavedProgress struct {
	Unlocked   int            `json:"unlocked"` // highest level index reached
	BestScores map[string]int `json:"bestScores"`
}

// SavedSettings represents the audio settings stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
}

// Store reads and writes raw items by key.
type Store interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Open returns a gdata-backed store for appName.
func Open(appName string) (Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open persistence: %w", err)
	}
	return m, nil
}

// MemoryStore keeps items in memory. It is used when the platform has no
// storage and in tests.
type MemoryStore struct {
	items map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string][]byte{}}
}

func (m *MemoryStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *MemoryStore) SaveItem(key string, data []byte) error {
	m.items[key] = append([]byte(nil), data...)
	return nil
}

// LoadProgress loads campaign results. A missing item yields empty progress.
func LoadProgress(s Store) (*SavedProgress, error) {
	p := &SavedProgress{BestScores: map[string]int{}}
	if err := loadJSON(s, progressKey, p); err != nil {
		// A failed decode may have partially filled p.
		return &SavedProgress{BestScores: map[string]int{}}, err
	}
	if p.BestScores == nil {
		p.BestScores = map[string]int{}
	}
	return p, nil
}

// SaveProgress writes campaign results.
func SaveProgress(s Store, p *SavedProgress) error {
	return saveJSON(s, progressKey, p)
}

// LoadSettings loads audio settings, nil when none were saved.
func LoadSettings(s Store) (*SavedSettings, error) {
	data, err := s.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings writes audio settings.
func SaveSettings(s Store, settings *SavedSettings) error {
	return saveJSON(s, settingsKey, settings)
}

func loadJSON(s Store, key string, v any) error {
	data, err := s.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

func saveJSON(s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}
	if err := s.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}
