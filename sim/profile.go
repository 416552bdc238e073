package sim

// MoveStyle selects how the horizontal axis becomes velocity.
type MoveStyle string

const (
	// MoveDirect assigns VX = axis * Speed every frame.
	MoveDirect MoveStyle = "direct"
	// MoveAccel adds axis * Accel, applies Friction and clamps to MaxSpeed.
	MoveAccel MoveStyle = "accel"
)

// HUDStyle selects what the heads-up display shows.
type HUDStyle string

const (
	HUDFragments HUDStyle = "fragments"
	HUDHearts    HUDStyle = "hearts"
)

// Profile holds every tuning constant of the simulation. Two profiles ship
// in prefabs/profiles.yaml; ClassicProfile mirrors the first one.
type Profile struct {
	Name string

	Move     MoveStyle
	Speed    float64
	Accel    float64
	Friction float64
	MaxSpeed float64

	Gravity   float64
	JumpSpeed float64
	MaxJumps  int

	DashSpeed  float64
	DashFrames int

	AttackFrames int
	AttackRange  float64
	AttackDamage int

	// LandingBand limits how far below a platform top the player's bottom
	// edge may be and still land. Zero means any overlap lands.
	LandingBand float64

	AnimStep     float64
	RunThreshold float64

	PlayerW, PlayerH float64
	PlayerHealth     int

	EnemyW, EnemyH float64
	EnemyHealth    int
	EnemySpeed     float64
	EnemyAnimStep  float64

	ContactDamage      int
	InvulnerableFrames int

	FinishMargin          float64
	RestartResetsProgress bool

	HUD HUDStyle

	// EnemyScript is optional tengo source computing the chase step.
	EnemyScriptName string
	EnemyScript     []byte
}

// JumpLimit is the most jumps a player can hold between landings.
const JumpLimit = 2

// ClassicProfile is direct-velocity movement with the full stage loop.
func ClassicProfile() Profile {
	return Profile{
		Name:                  "classic",
		Move:                  MoveDirect,
		Speed:                 5,
		Gravity:               0.6,
		JumpSpeed:             12,
		MaxJumps:              2,
		DashSpeed:             14,
		DashFrames:            30,
		AttackFrames:          15,
		AttackRange:           30,
		AttackDamage:          1,
		AnimStep:              0.15,
		RunThreshold:          1,
		PlayerW:               24,
		PlayerH:               24,
		PlayerHealth:          3,
		EnemyW:                20,
		EnemyH:                20,
		EnemyHealth:           2,
		EnemySpeed:            1.2,
		EnemyAnimStep:         0.1,
		FinishMargin:          40,
		RestartResetsProgress: true,
		HUD:                   HUDFragments,
	}
}
