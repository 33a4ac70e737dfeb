package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/carewell/provider-match/internal/config"
	"github.com/carewell/provider-match/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg       *config.Config
	Directory db.Directory
	Logger    *zap.Logger
	Ctx       context.Context
}
