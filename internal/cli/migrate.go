package cli

import (
	"fmt"

	"dailyhabit/internal/storage"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		fmt.Println("JSON storage has no migrations.")
		return nil
	}

	applied, err := sqliteStore.Migrate(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return err
	}
	if applied == 0 {
		fmt.Println("Schema is up to date.")
	} else {
		fmt.Printf("Applied %d migration(s).\n", applied)
	}
	return nil
}
