// Package repomanager wires a record-store backend and hands out the
// per-table repositories. Two backends exist: DynamoDB for deployments and
// SQLite for local stacks.
package repomanager

import (
	"github.com/verifeed/verifeed/internal/server/repositories/identities"
	"github.com/verifeed/verifeed/internal/server/repositories/posts"
	"github.com/verifeed/verifeed/internal/server/repositories/quarantine"
)

type Manager interface {
	Identities() identities.Repository
	Quarantine() quarantine.Repository
	Posts() posts.Repository
	Close() error
}

// Tables names the three logical record-store tables.
type Tables struct {
	Identities string
	Quarantine string
	Posts      string
}
