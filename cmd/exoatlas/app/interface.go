package app

import (
	"github.com/exoatlas/exoatlas/internal/cmd/application"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)
