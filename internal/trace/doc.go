package trace

// Package trace loads recorded gesture sessions from YAML and replays them
// through a fresh gesture.Machine, recording every lifecycle callback. It is
// used to reproduce reported gesture bugs outside of a running UI.
