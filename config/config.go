package config

import "image/color"

// TileConfig describes the world grid.
type TileConfig struct {
	Size         float64 // pixels per tile edge
	LandVariants int     // texture palette size for land tiles
	SeaVariants  int     // texture palette size for sea tiles
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Scale         float64 // pixels per physics unit
	CellSize      int     // resolv broadphase cell size in physics units
	EdgeThickness float64 // thickness of boundary edge fixtures in physics units
	MaxSubSteps   int     // upper bound on integration sub-steps per Step
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Health
	Health    float64
	MaxHealth float64

	// Movement (pixels per second)
	LandSpeed float64
	SeaSpeed  float64

	// Dimensions (pixels)
	BodyWidth    float64
	BodyHeight   float64
	SensorWidth  float64 // health-sensor rectangle used for pickups and hazards
	SensorHeight float64

	// Vehicle interaction
	DismountReach float64 // max gap between body and shore to step onto land
}

// HostileTypeConfig contains configuration for specific hostile types
type HostileTypeConfig struct {
	Name        string
	Behavior    BehaviorID
	TextureKey  string
	PatrolSpeed float64 // pixels per second
	ChaseSpeed  float64
	ChaseRange  float64 // pixels; chase starts inside this distance
	PatrolRange float64 // pixels from spawn

	// Orbit patrol only
	OrbitPeriod float64 // seconds per loop

	// Combat
	DamagePerSecond float64

	// Dimensions
	BodyWidth  float64
	BodyHeight float64
}

// HostileConfig contains hostile system configuration
type HostileConfig struct {
	// Variants maps the map symbol variant (0 or 1) to a type name.
	Variants map[int]string
	Types    map[string]HostileTypeConfig

	// Chase stops once the player is further than ChaseRange * HysteresisMultiplier.
	HysteresisMultiplier float64
}

// PickupConfig contains heart and coin values
type PickupConfig struct {
	HeartHeal    float64
	HeartRadius  float64
	CoinValue    int
	CoinRadius   float64
	BobHeight    float64 // pixels
	BobDuration  float32 // seconds for one half cycle
	MarkerRadius float64 // exit cross mark draw radius
}

// VehicleConfig contains companion vehicle values
type VehicleConfig struct {
	Width  float64
	Height float64
}

// CameraConfig contains camera spring-damper constants
type CameraConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64
}

// UIConfig contains HUD layout and colors
type UIConfig struct {
	HealthBarX      float64
	HealthBarY      float64
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA
	ScoreIconX      float64
	ScoreIconY      float64
	ScoreIconSize   float64
	ScoreTextX      float64
	ScoreTextY      float64
	ScoreTextScale  float64
	SandBedTint     color.RGBA
	CullPadding     float64
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Tile TileConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Hostile HostileConfig
var Pickup PickupConfig
var Vehicle VehicleConfig
var Camera CameraConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gainsboro    = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	HealthGreen  = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// Hostile type names
const (
	HostileCrab  = "Crab"
	HostileShark = "Shark"
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Tile = TileConfig{
		Size:         32,
		LandVariants: 4,
		SeaVariants:  2,
	}

	// 2 pixels per unit keeps a tile at 16 units, one broadphase cell.
	Physics = PhysicsConfig{
		Scale:         2,
		CellSize:      16,
		EdgeThickness: 1,
		MaxSubSteps:   8,
	}

	Player = PlayerConfig{
		Health:        100,
		MaxHealth:     100,
		LandSpeed:     96,
		SeaSpeed:      128,
		BodyWidth:     20,
		BodyHeight:    20,
		SensorWidth:   32,
		SensorHeight:  32,
		DismountReach: 4,
	}

	crab := HostileTypeConfig{
		Name:            HostileCrab,
		Behavior:        BehaviorLandPatrol,
		TextureKey:      "enemy0",
		PatrolSpeed:     40,
		ChaseSpeed:      64,
		ChaseRange:      96,
		PatrolRange:     48,
		DamagePerSecond: 18, // 0.3 per frame at 60fps
		BodyWidth:       22,
		BodyHeight:      18,
	}

	shark := HostileTypeConfig{
		Name:            HostileShark,
		Behavior:        BehaviorSeaPatrol,
		TextureKey:      "enemy1",
		PatrolSpeed:     56,
		ChaseSpeed:      88,
		ChaseRange:      128,
		PatrolRange:     40,
		OrbitPeriod:     4,
		DamagePerSecond: 18,
		BodyWidth:       24,
		BodyHeight:      16,
	}

	Hostile = HostileConfig{
		Variants: map[int]string{
			0: HostileCrab,
			1: HostileShark,
		},
		Types: map[string]HostileTypeConfig{
			HostileCrab:  crab,
			HostileShark: shark,
		},
		HysteresisMultiplier: 1.5,
	}

	Pickup = PickupConfig{
		HeartHeal:    20,
		HeartRadius:  10,
		CoinValue:    1,
		CoinRadius:   8,
		BobHeight:    3,
		BobDuration:  0.6,
		MarkerRadius: 12,
	}

	Vehicle = VehicleConfig{
		Width:  28,
		Height: 28,
	}

	Camera = CameraConfig{
		Stiffness: 1800,
		Damping:   600,
		Mass:      50,
	}

	UI = UIConfig{
		HealthBarX:      10,
		HealthBarY:      10,
		HealthBarWidth:  130,
		HealthBarHeight: 13,
		HealthBarBg:     DarkGray,
		HealthBarFg:     HealthGreen,
		ScoreIconX:      160,
		ScoreIconY:      16,
		ScoreIconSize:   12,
		ScoreTextX:      172,
		ScoreTextY:      21,
		ScoreTextScale:  0.8,
		SandBedTint:     Gainsboro,
		CullPadding:     32,
	}
}
