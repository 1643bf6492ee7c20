// Package docs embeds the help topics shipped with the absetup binary.
package docs

import "embed"

//go:embed help
var HelpFS embed.FS

// HelpDir is the subtree within HelpFS holding the topic files.
const HelpDir = "help"
