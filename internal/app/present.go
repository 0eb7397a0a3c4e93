package app

// needsPresent reports whether a frame must copy the canvas to the screen.
// The screen keeps its contents between frames, so a frame with no dirty
// cells and no HUD on screen, now or in the previous frame, draws nothing.
func needsPresent(dirty int, hud, hudShown bool) bool {
	return dirty > 0 || hud || hudShown
}
