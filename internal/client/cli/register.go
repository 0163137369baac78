package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Register(ctx context.Context) error {

	userName, err := GetSimpleText(a.reader, "Enter user name", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	role, err := GetSimpleText(a.reader, "Enter role (user/admin)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if err := a.client.Register(ctx, userName, string(password), role); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Success!")
	return nil
}
