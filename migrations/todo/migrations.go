// Package todo embeds the todolists/todos schema migrations.
package todo

import "embed"

// FS holds the goose migration files for the todo bounded context.
//
//go:embed *.sql
var FS embed.FS
