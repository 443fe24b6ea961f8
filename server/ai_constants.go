package server

// AI Constants for Bot Behavior
// These constants control task selection, aiming, and movement for all
// bots. Centralizing them makes the AI easier to tune and test.

const (
	// Task selection timing
	PendingFireHoldTime = 1.0 // Keep aiming at a committed shot for up to this long
	SeenTargetTTL       = 5.0 // Forget targets not seen for this many seconds
	LookFlickerWindow   = 2.0 // Suppress look-weight growth around look-state changes
	LookUrgencyRate     = 5.0 // Look-for-enemies weight gained per second without looking
	LookFlickerWeight   = 3.0 // Fixed look weight inside the flicker window

	// Universal task weights
	FlagCapOverrideWeight  = 9001.0 // Carrying the flag with a capturable stand beats everything
	RunningRouteWeight     = 170.0
	MoveToRouteStartWeight = 70.0

	// Anti-stall: a MoveToTarget winner this close to a stand it cannot
	// act on demotes to looking for enemies.
	AntiStallDistance = 300.0

	// Teleport assist for offense bots stuck getting to their route
	// start: allowed distance grows with time stuck squared.
	TeleportAssistRate = 10.0   // units per second-stuck squared
	TeleportAssistCap  = 5000.0 // never teleport from farther than this

	// Route abandonment
	RouteAbandonCapDistance = 3000.0 // With flag and farther than this, head home at full weight
	OffenseIdleRespawnTime  = 10.0   // Abandoned route, no flag, alive this long -> respawn

	// Chase role
	ChaseFlagCloseDistance = 10000.0 // Inside this, a return dominates
	ChaseRespawnDistance   = 20000.0 // Farther than this with flag home -> respawn
	ChaseIgnoreDistance    = 500.0   // Already at the flag; no movement weight

	// LO role
	LOAtStandDistance = 400.0 // Within this of the enemy stand counts as "there"

	// Destination overrides
	TargetChaseMaxDistance    = 20000.0 // Chase the current target if within this
	TargetChaseNearDestLimit  = 10000.0 // ...and the destination is within this
	FlagOverrideDistance      = 5000.0  // Default radius where a loose flag wins
	SaHEnemyFlagOverride      = 15000.0 // StayAtHome reaches farther for the enemy flag
	SaHFriendlyFlagOverride   = 10000.0 // ...and for returns
	ChaseFriendlyFlagOverride = 15000.0
	LooseFlagPickupDistance   = 5000.0  // Offense/LO divert to a dropped flag inside this
	SaHStandoffGrabDistance   = 10000.0 // StayAtHome goes for a loose enemy flag inside this
	SaHChaseReturnDistance    = 10000.0 // StayAtHome chases its flag inside this

	// Target evaluation
	FocusStickyBonus    = 30.0 // Keep shooting who we are shooting
	FocusGroundedBonus  = 30.0 // Targets near the ground are easier
	FocusCarrierBonus   = 50.0 // We really like shooting the carrier
	FocusGroundedHeight = 200.0
	FocusDistancePivot  = 10000.0

	// Predictive aim
	GroundSnapHeight = 600.0 // Targets this close to the ground aim at ground height

	// Aim & fire
	AimpointRerollInterval = 1.0  // Re-roll aim skew this often, not every frame
	MaxAimSkewDeg          = 80.0 // Hard clamp on accumulated skew
	AimLerpFactor          = 0.1  // Fraction of remaining rotation applied per frame
	TriggerAngleDeg        = 0.05 // Fire the launcher only within this of the aim point
	LookBackSkewDuration   = 3.0  // Seconds over which post-shot look-back skew fades
	LOSBlockTolerance      = 100.0

	// Weapon selection
	WeaponSwitchCooldown = 2.0
	LowHealthThreshold   = 50.0
	GroundPoundHeight    = 600.0
	FastTargetKPH        = 160.0
	LongRangeDistance    = 10000.0
	CloseRangeDistance   = 3000.0
	HeadOnVelocityRatio  = 0.8
	WeaponDisabledWeight = -100.0

	// Non-rapid fire suppression per accuracy tier (seconds since last shot)
	FireGateHorrible = 6.0
	FireGateDecent   = 4.0
	FireGateGood     = 2.0

	// Rapid-fire heat gates per accuracy tier
	HeatGateHorrible = 0.1
	HeatGateDecent   = 0.2
	HeatGateGood     = 0.4

	// Movement
	SkiMinHeight          = 100.0  // Only skim when near the ground
	SkiMinDistance        = 1000.0 // ...and still far from the destination
	JetOvershootFudge     = 300.0  // How far above a target we allow overshooting
	JetEnergyRechargeTime = 2.0    // Let energy recharge this long before jetting again
	JetEnergyFloor        = 100.0
	EnergyCheatThreshold  = 50.5 // Force-replenish below this; bots are bad with energy
	WanderRerollTime      = 1.0
	WanderRerollWindow    = 3.0
	WanderChillDistance   = 5000.0

	// Sentinel distance for "no target"
	MaxSearchDistance = 9999999.0
)

// Weapon slots. The launcher is the short-range projectile weapon and the
// default choice; the minigun is the long-range rapid-fire weapon.
const (
	WeaponSlotLauncher = 0
	WeaponSlotMinigun  = 1
)

// TriggerPrimary is the fire control slot every weapon uses.
const TriggerPrimary = 0

// Projectile parameters per weapon. Inheritance is the fraction of the
// shooter's own velocity imparted to the projectile.
const (
	LauncherProjectileSpeed = 6500.0
	LauncherInheritance     = 0.5
	MinigunProjectileSpeed  = 52500.0
	MinigunInheritance      = 1.0
)
