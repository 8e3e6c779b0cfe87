package config

// ParticleKind names a particle burst style for the renderer
type ParticleKind string

const (
	ParticleBlood      ParticleKind = "blood"
	ParticleGreenBlood ParticleKind = "green_blood"
	ParticleBone       ParticleKind = "bone"
	ParticleArmor      ParticleKind = "armor"
	ParticleSpark      ParticleKind = "spark"
	ParticleHit        ParticleKind = "hit"
)

// Flash colors sent with render flash intents (0xRRGGBB).
const (
	FlashWhite  uint32 = 0xffffff
	FlashYellow uint32 = 0xffff00
	FlashOrange uint32 = 0xffaa00
	FlashRed    uint32 = 0xff0000
	FlashCool   uint32 = 0xaa4444
	FlashBlue   uint32 = 0x00aaff
	FlashHurt   uint32 = 0xff4444
)
