package status

// Metric names published by the engine and the sensor server
const (
	EngineTicks   = "engine.ticks"
	JudgeHits     = "judge.hits"
	JudgeMisses   = "judge.misses"
	JudgeEmpty    = "judge.empty"
	SessionScore  = "session.score"
	SessionLife   = "session.life"
	SessionStreak = "session.streak"
	SessionID     = "session.id"
	InputSymbol   = "input.symbol"

	SensorConnections = "sensor.connections"
	SensorMessages    = "sensor.messages"
	SensorRejected    = "sensor.rejected"
	SensorLast        = "sensor.last"
)
