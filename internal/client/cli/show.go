package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

func (a *App) Show(ctx context.Context) error {

	id, err := a.getID()
	if err != nil {
		return err
	}

	p, err := a.client.GetPromotion(ctx, a.token, id)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("ID:          %d\n", p.ID)
	fmt.Printf("Title:       %s\n", p.Title)
	fmt.Printf("Full price:  %.2f\n", p.FullPrice)
	fmt.Printf("Promo price: %.2f\n", p.PromoPrice)
	fmt.Printf("Location:    %s\n", p.Location)
	return nil
}

func (a *App) getID() (int64, error) {
	text, err := GetSimpleText(a.reader, "Enter promotion ID", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return 0, err
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Println("invalid ID:", text)
		return 0, err
	}
	return id, nil
}
