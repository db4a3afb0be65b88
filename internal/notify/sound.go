package notify

import "os/exec"

// SoundPlayer plays the reminder cue.
type SoundPlayer interface {
	Play()
}

// AfplaySound shells out to afplay. Fire and forget: a missing file or a
// failed launch is ignored and must never stall the tick loop.
type AfplaySound struct {
	Path string
}

func (s AfplaySound) Play() {
	_ = exec.Command("afplay", s.Path).Start()
}
