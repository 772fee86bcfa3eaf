package canyon

// World geometry. Entity stats are fixed constants, not configuration.
const (
	WorldW      = 1200.0
	WorldH      = 800.0
	Columns     = 33                    // ground columns per screen width
	ColumnWidth = int(WorldW) / Columns // 36

	TerrainSamples   = 65  // seeded buffer length and top-window cap
	RefillThreshold  = 33  // refill once this many samples remain
	SegmentSamples   = 32  // samples per appended segment
	Displacement     = 35.0
	Roughness        = 0.7
	hazardColumn     = 33 // height sample a new cactus stands on
	hazardSink       = 25 // cactus box top sits this far above the surface sample
	Gravity          = 2.0
	maxGravityStep   = 5.0
	MaxFallSpeed     = 50.0
	airTickScale     = 30.0 // air ticks per unit of the gravity curve
	bossClockDivisor = 30   // ticks per elapsed second on the boss clock
)

// Player stats.
const (
	PlayerStartX      = 40.0
	PlayerStartY      = WorldH / 2 * 1.5
	PlayerSize        = 50.0
	PlayerMaxHealth   = 300
	JumpVelocity      = -15.0
	AttackCooldown    = 30
	cooldownStep      = 3
	SpeedNormal       = 20.0
	SpeedFrozen       = 10.0
	SpeedStunned      = 0.0
	BuffTicks         = 100 // five seconds at 20 tps
	StatusTicks       = 40  // two seconds at 20 tps
	PotionHeal        = 50
	PowerupTTL        = 60 // three seconds at 20 tps
	PowerupSize       = 40.0
	powerupMinOffset  = 200
	powerupMaxOffset  = 500
	powerupLift       = 20.0
	HeroShotSize      = 20.0
	HeroShotSpeed     = 30.0
	EnemyShotSize     = 20.0
	EnemyShotSpeed    = 15.0
	HazardW           = 38.0
	HazardH           = 62.0
	HazardScroll      = float64(ColumnWidth)
	FlyerSize         = 40.0
	FlyerSpawnY       = 40.0
	FlyerSpeed        = 6.0
	FlyerSink         = 5.0
	CasterSize        = 100.0
	CasterSpawnY      = 40.0
	CasterSpeed       = 6.0
	BossHealth        = 200
	BossStep          = 7.0
	bossSpawnY        = 400.0
	ChargerW          = 130.0
	ChargerH          = 90.0
	JumperSize        = 100.0
	ChargeCountdown   = 50
	ChargeSpeed       = 6.0
	chargeWindupTicks = 15
	JumpCooldown      = 120
	BossJumpVelocity  = -50.0
	JumpBandMin       = 200.0
	JumpBandMax       = 400.0
)

// Contact damage dealt to the player, and damage dealt to a boss per hero hit.
const (
	DamageHazard    = 20
	DamageFlyer     = 10
	DamageCaster    = 20
	DamageEnemyShot = 10
	DamageBoss      = 30
	DamageToBoss    = 30
)

// Spawn policies: a draw of rng.Intn(chanceOutOf+1) succeeds when <= chance.
const (
	hazardChance, hazardOutOf               = 6, 300
	flyerChance, flyerOutOf                 = 1, 100 // 1+Intn(100) < 2
	casterChance, casterOutOf               = 2, 200
	doubleJumpChance, doubleJumpOutOf       = 1, 200
	invincibilityChance, invincibilityOutOf = 1, 600
	potionChance, potionOutOf               = 1, 3000
	bossChance, bossOutOf                   = 2, 500

	MaxFlyers     = 3
	MaxCasters    = 1
	MaxPowerups   = 1 // per kind
	maxFireShots  = 4 // fire/ice casters keep firing while at most this many shots are live
	maxRockShots  = 0
	bossWarmupSec = 60
	bossCycleSec  = 30
	bossWindowLo  = 2
	bossWindowHi  = 6
)
