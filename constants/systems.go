package constants

// System Priorities (lower runs first within a tick)
const (
	PriorityKinematics = 10
	PrioritySpawn      = 20
	PriorityMovement   = 30
	PriorityCollision  = 40
	PriorityScore      = 50
)
