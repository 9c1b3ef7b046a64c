package modkit

import "benchmarks/internal/modkit/module"

// Module is the common surface for API modules
type Module = module.Module
