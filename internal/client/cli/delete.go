package cli

import (
	"context"
	"fmt"
)

func (a *App) Delete(ctx context.Context) error {

	id, err := a.getID()
	if err != nil {
		return err
	}

	if err := a.client.DeletePromotion(ctx, a.token, id); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Deleted!")
	return nil
}
