package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized dailyhabit storage at: %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Next: create an account with 'dailyhabit register <username>'")
	return nil
}
