package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	ProfilesFile = "profiles.yaml"
	StagesFile   = "stages.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ProfilesSpec struct {
	Default  string        `yaml:"default"`
	Profiles []ProfileSpec `yaml:"profiles"`
}

type ProfileSpec struct {
	Name         string     `yaml:"name"`
	Move         string     `yaml:"move"`
	Speed        float64    `yaml:"speed"`
	Accel        float64    `yaml:"accel"`
	Friction     float64    `yaml:"friction"`
	MaxSpeed     float64    `yaml:"max_speed"`
	Gravity      float64    `yaml:"gravity"`
	JumpSpeed    float64    `yaml:"jump_speed"`
	MaxJumps     int        `yaml:"max_jumps"`
	DashSpeed    float64    `yaml:"dash_speed"`
	DashFrames   int        `yaml:"dash_frames"`
	AttackFrames int        `yaml:"attack_frames"`
	AttackRange  float64    `yaml:"attack_range"`
	AttackDamage int        `yaml:"attack_damage"`
	LandingBand  float64    `yaml:"landing_band"`
	AnimStep     float64    `yaml:"anim_step"`
	RunThreshold float64    `yaml:"run_threshold"`
	Player       PlayerSpec `yaml:"player"`
	Enemy        EnemySpec  `yaml:"enemy"`
	FinishMargin float64    `yaml:"finish_margin"`
	ResetOnRetry bool       `yaml:"restart_resets_progress"`
	HUD          string     `yaml:"hud"`
}

type PlayerSpec struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	Health             int     `yaml:"health"`
	ContactDamage      int     `yaml:"contact_damage"`
	InvulnerableFrames int     `yaml:"invulnerable_frames"`
}

type EnemySpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Health   int     `yaml:"health"`
	Speed    float64 `yaml:"speed"`
	AnimStep float64 `yaml:"anim_step"`
	Script   string  `yaml:"script"`
}

type StagesSpec struct {
	WorldWidth float64     `yaml:"world_width"`
	Stages     []StageSpec `yaml:"stages"`
}

type StageSpec struct {
	Name      string         `yaml:"name"`
	Spawn     SpawnSpec      `yaml:"spawn"`
	Platforms []PlatformSpec `yaml:"platforms"`
	Enemies   EnemyBatchSpec `yaml:"enemies"`
}

type SpawnSpec struct {
	X      float64 `yaml:"x"`
	Bottom float64 `yaml:"bottom"`
}

type PlatformSpec struct {
	X      float64 `yaml:"x"`
	Bottom float64 `yaml:"bottom"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
}

type EnemyBatchSpec struct {
	Count   int     `yaml:"count"`
	StartX  float64 `yaml:"start_x"`
	Spacing float64 `yaml:"spacing"`
	Bottom  float64 `yaml:"bottom"`
}
