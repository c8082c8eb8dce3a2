package engine

// System is a simulation stage owned by the world
// Update signatures differ per stage since data flows explicitly between them
type System interface {
	Name() string
	Priority() int // Lower values run first
	Init()         // Resets session state
}
