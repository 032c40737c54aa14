package constants

// Environment variable keys read by config.LoadEnv.
const (
	EnvConfigPath = "MINIRPG_CONFIG"
	EnvDBPath     = "MINIRPG_DB"
	EnvSeed       = "MINIRPG_SEED"
	EnvSaveSlot   = "MINIRPG_SAVE_SLOT"
	EnvClass      = "MINIRPG_CLASS"
	EnvHero       = "MINIRPG_HERO"
	EnvMaxSteps   = "MINIRPG_MAX_STEPS"
)

// Defaults used when the environment leaves a value unset.
const (
	DefaultConfigPath = "./world.yaml"
	DefaultDBPath     = "./data/minirpg.db"
	DefaultSaveSlot   = "main"
	DefaultClass      = "warrior"
	DefaultHero       = "Hero"
	DefaultMaxSteps   = 200
)

// World zone keys the game loop refers to directly.
const (
	ZoneVillage = "village"
	ZoneForest  = "forest"
	ZoneDungeon = "dungeon"
)

// Logging field names
const (
	LogFieldSessionID   = "session_id"
	LogFieldEncounterID = "encounter_id"
	LogFieldZone        = "zone"
	LogFieldEvent       = "event"
	LogFieldEnemy       = "enemy"
	LogFieldRound       = "round"
	LogFieldResult      = "result"
	LogFieldQuestStage  = "quest_stage"
	LogFieldGold        = "gold"
	LogFieldSlot        = "slot"
	LogFieldItem        = "item"
	LogFieldSeed        = "seed"
	LogFieldPath        = "path"
	LogFieldClass       = "class"
	LogFieldName        = "name"
	LogFieldVersion     = "version"
)
