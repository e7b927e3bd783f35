//go:build !cgo

package hal

func newWindowAudio() Audio   { return nullAudio{} }
func newTerminalAudio() Audio { return nullAudio{} }
