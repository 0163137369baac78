package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dsmirnov/promoboard/internal/client/api"
)

func (a *App) Add(ctx context.Context) error {

	title, err := GetSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fullPrice, err := a.getPrice("Enter full price")
	if err != nil {
		return err
	}

	promoPrice, err := a.getPrice("Enter promo price")
	if err != nil {
		return err
	}

	location, err := GetSimpleText(a.reader, "Enter location", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	created, err := a.client.AddPromotion(ctx, a.token, api.Promotion{
		Title:      title,
		FullPrice:  fullPrice,
		PromoPrice: promoPrice,
		Location:   location,
	})
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Created promotion %d\n", created.ID)
	return nil
}

func (a *App) getPrice(prompt string) (float64, error) {
	text, err := GetSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return 0, err
	}
	price, err := strconv.ParseFloat(text, 64)
	if err != nil {
		fmt.Println("invalid price:", text)
		return 0, err
	}
	return price, nil
}
