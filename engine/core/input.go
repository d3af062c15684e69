package core

// Input is the per-tick snapshot handed to the simulation by the presentation layer.
// Fire, Melee and Push are edge-triggered: true only on the tick the action starts.
type Input struct {
	MoveX     float64 `msgpack:"mx" yaml:"move_x"`
	MoveY     float64 `msgpack:"my" yaml:"move_y"`
	AimX      float64 `msgpack:"ax" yaml:"aim_x"`
	AimY      float64 `msgpack:"ay" yaml:"aim_y"`
	Fire      bool    `msgpack:"f" yaml:"fire"`
	Melee     bool    `msgpack:"m" yaml:"melee"`
	Push      bool    `msgpack:"p" yaml:"push"`
	ElapsedMs float64 `msgpack:"dt" yaml:"elapsed_ms"`
}
