package loads

import (
	"fmt"
	"time"

	"github.com/freightdesk/backoffice/pkg/config"
	"github.com/freightdesk/backoffice/pkg/enums"
)

const defaultPageSize = 14

// Source is the entry path a load was created through. Each path has its own
// initial status.
type Source string

const (
	SourceManual Source = "manual"
	SourceImport Source = "import"
)

func (s Source) IsValid() bool {
	return s == SourceManual || s == SourceImport
}

// Policy holds the tenant-independent knobs of the load lifecycle.
type Policy struct {
	InitialStatus       enums.LoadStatus
	ImportInitialStatus enums.LoadStatus
	// LockTerminal rejects status changes out of completed, closed, cancelled
	// and tonu.
	LockTerminal bool
	PageSize     int
	Location     *time.Location
	StatusOrder  StatusOrder
}

// DefaultPolicy mirrors the config defaults.
func DefaultPolicy() Policy {
	return Policy{
		InitialStatus:       enums.LoadStatusAvailable,
		ImportInitialStatus: enums.LoadStatusActionNeeded,
		PageSize:            defaultPageSize,
		Location:            time.UTC,
		StatusOrder:         DefaultStatusOrder,
	}
}

// PolicyFromConfig parses the FREIGHTDESK_LOADS_* settings.
func PolicyFromConfig(cfg config.LoadsConfig) (Policy, error) {
	p := DefaultPolicy()

	initial, err := enums.ParseLoadStatus(cfg.InitialStatus)
	if err != nil {
		return Policy{}, fmt.Errorf("%s: %w", config.EnvLoadsInitialStatus, err)
	}
	p.InitialStatus = initial

	if cfg.ImportInitialStatus != "" {
		imported, err := enums.ParseLoadStatus(cfg.ImportInitialStatus)
		if err != nil {
			return Policy{}, fmt.Errorf("%s: %w", config.EnvLoadsImportInitialStatus, err)
		}
		p.ImportInitialStatus = imported
	}

	loc, err := cfg.Location()
	if err != nil {
		return Policy{}, fmt.Errorf("%s: %w", config.EnvLoadsTimezone, err)
	}
	p.Location = loc
	p.LockTerminal = cfg.LockTerminal
	if cfg.PageSize > 0 {
		p.PageSize = cfg.PageSize
	}
	return p, nil
}

// InitialStatusFor returns the status a new load starts in.
func (p Policy) InitialStatusFor(source Source) enums.LoadStatus {
	if source == SourceImport {
		return p.ImportInitialStatus
	}
	return p.InitialStatus
}

// AllowsTransition reports whether a load may move from one status to another.
func (p Policy) AllowsTransition(from, to enums.LoadStatus) bool {
	if from == to {
		return true
	}
	return !(p.LockTerminal && from.IsTerminal())
}
