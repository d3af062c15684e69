package core

// Times are in milliseconds of simulation time, speeds in arena units per second.
const (
	ArenaWidth  = 900.0
	ArenaHeight = 600.0

	MaxFrameMs = 250.0 // cap on a single step's elapsed time

	PlayerSpeed  = 200.0
	PlayerHealth = 100
	PlayerRadius = 20.0

	HostileHealth      = 80
	HostileRadius      = 12.0
	HostileSpeedMin    = 40
	HostileSpeedMax    = 90
	HostileShotMinMs   = 800
	HostileShotMaxMs   = 1600
	HostileSpawnMargin = 20.0

	PlayerBulletSpeed    = 500.0
	PlayerBulletOffset   = 30.0
	PlayerBulletLifeMs   = 1200.0
	PlayerBulletRadius   = 4.0
	PlayerBulletDamage   = 35
	PlayerFireIntervalMs = 180.0

	HostileBulletSpeed  = 220.0
	HostileBulletOffset = 16.0
	HostileBulletLifeMs = 3000.0
	HostileBulletRadius = 5.0
	HostileBulletDamage = 12

	ContactDamage    = 18
	ContactKnockback = 180.0
	KnockbackMs      = 200.0

	MeleeRange     = 60.0
	MeleeHalfAngle = 1.0471975511965976 // π/3
	MeleeDamage    = 60
	MeleeCooldown  = 500.0

	PushRadius   = 160.0
	PushForce    = 3.0 // per unit of (radius - distance)
	PushDamage   = 30
	PushCost     = 30.0
	PushCooldown = 3000.0
	PushFadeMs   = 600.0

	PowerMax        = 100.0
	PowerRegenPerMs = 0.01

	SpawnIntervalMs = 2500.0

	ScoreBulletKill = 50
	ScoreMeleeKill  = 40
	ScorePushKill   = 30
)
