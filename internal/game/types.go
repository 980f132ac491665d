package game

// SceneID tags the closed set of scenes. Dispatch is an explicit switch in
// the host rather than virtual dispatch on a scene interface.
type SceneID int

const (
	SceneMenu SceneID = iota
	ScenePlay
)

// Transition is a scene-transition request returned from a scene update and
// processed synchronously by the host. At most one transition is applied per
// frame.
type Transition int

const (
	TransitionNone Transition = iota
	// TransitionNewGame discards the current play scene and starts a fresh
	// one from the loaded level.
	TransitionNewGame
	TransitionToMenu
	TransitionToGame
	TransitionQuit
	// TransitionLevelComplete is emitted once, the frame all goals latch.
	// The host maps it to its configured destination.
	TransitionLevelComplete
)
