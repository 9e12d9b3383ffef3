package cmd

import (
	"fmt"
	"strconv"

	"github.com/diankaa7/splyyt/internal/model"

	"github.com/spf13/cobra"
)

var shopCmd = &cobra.Command{
	Use:   "shop [item-id]",
	Short: "List avatar items, or \"buy\" one (simulated)",
	Args:  cobra.RangeArgs(0, 1),
	RunE:  runShop,
}

func init() {
	rootCmd.AddCommand(shopCmd)
}

func runShop(_ *cobra.Command, args []string) error {
	tr, st, _, err := openTracker()
	if err != nil {
		return err
	}
	defer st.Close()

	if len(args) == 0 {
		fmt.Println()
		fmt.Println("  Магазин аватаров")
		fmt.Println()
		for _, item := range model.AvatarCatalog {
			fmt.Printf("  %s  %-20s %s ⭐  (%s)\n",
				item.Emoji, item.Name, strconv.Itoa(item.Stars), item.ID)
		}
		fmt.Println()
		fmt.Println("  Купить: splyyt shop <item-id>")
		return nil
	}

	item, ok := model.AvatarByID(args[0])
	if !ok {
		return fmt.Errorf("unknown item %q", args[0])
	}

	// Payments are not wired up; the purchase is a free demo unlock.
	if err := reportMutation(nil, tr.SetAvatar(item.Emoji)); err != nil {
		return err
	}
	fmt.Printf("  Аватар обновлён: %s %s\n", item.Emoji, item.Name)
	fmt.Println("  (покупка за ⭐ будет доступна после подключения оплаты)")
	return nil
}
