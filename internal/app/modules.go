package app

import (
	"github.com/specialistvlad/daygrid/internal/registry"
	"github.com/specialistvlad/daygrid/modules/d01"
	"github.com/specialistvlad/daygrid/modules/d02"
)

// coreModules is the list of day modules compiled into the binaries.
var coreModules = []registry.Module{
	&d01.Module{},
	&d02.Module{},
}
