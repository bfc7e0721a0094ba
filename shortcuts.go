package main

import (
	"gioui.org/io/key"
	"gioui.org/io/system"
)

func shortcutToggleFps(key.Name, key.Modifiers) {
	if fpsDisplay.Active() {
		fpsDisplay.Deactivate()
		fpsReadout.SetText("off")
		log.Info().Msg("fps display off")
		return
	}
	fpsDisplay.Activate()
	fpsReadout.SetText("-")
	log.Info().Msg("fps display on")
}

func shortcutPrintRate(key.Name, key.Modifiers) {
	rate, err := fpsDisplay.Rate()
	if err != nil {
		log.Warn().Err(err).Msg("cannot read fps")
		return
	}
	frametime, _ := fpsDisplay.Frametime()
	log.Info().Float64("fps", rate).Dur("frametime", frametime).Send()
}

func shortcutQuit(key.Name, key.Modifiers) {
	window.Perform(system.ActionClose)
}
