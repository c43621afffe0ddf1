package dvdlogo

import (
	_ "embed"
)

//go:embed VERSION
var Version string

//go:embed dvdlogo.toml
var DefaultConfig string
