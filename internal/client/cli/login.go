package cli

import (
	"context"
	"fmt"
	"os"
)

func (a *App) Login(ctx context.Context) error {

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

	token, err := a.client.Login(ctx, userName, string(password))
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.token = token
	a.userName = userName

	fmt.Println("Logged in!")
	return nil
}
