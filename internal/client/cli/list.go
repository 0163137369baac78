package cli

import (
	"context"
	"fmt"
)

func (a *App) List(ctx context.Context) error {

	promotions, err := a.client.ListPromotions(ctx, a.token)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	if len(promotions) == 0 {
		fmt.Println("No promotions yet")
		return nil
	}

	for _, p := range promotions {
		fmt.Printf("%d\t%s\t%.2f -> %.2f\t%s\n", p.ID, p.Title, p.FullPrice, p.PromoPrice, p.Location)
	}
	return nil
}
