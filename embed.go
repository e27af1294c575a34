package angryclones

import "embed"

// Assets holds the images, sounds, config and level profiles shipped with the game.
//
//go:embed assets data
var Assets embed.FS
