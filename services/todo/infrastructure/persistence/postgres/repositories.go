package postgres

import "github.com/ghuser/todolists/services/todo/domain/repositories"

var (
	_ repositories.ListRepository = (*ListRepository)(nil)
	_ repositories.ItemRepository = (*ItemRepository)(nil)
)
