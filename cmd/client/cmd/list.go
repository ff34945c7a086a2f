package cmd

import (
	"fmt"
	"time"

	"datareceiver/internal/domain/record"

	"github.com/spf13/cobra"
)

var (
	listOrigin string
	listDate   string
	listFormat string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Список записей",
	Long: `Просмотр сохраненных записей. Фильтры --origin и --date (YYYY-MM-DD)
объединяются через И, без фильтров выводятся все записи.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listDate != "" {
			// сервер примет любую строку, но опечатку лучше поймать здесь
			if _, err := time.Parse(record.DateLayout, listDate); err != nil {
				return fmt.Errorf("дата должна быть в формате YYYY-MM-DD: %q", listDate)
			}
		}

		records, err := app.ListRecords(cmd.Context(), record.Filter{Origin: listOrigin, Date: listDate})
		if err != nil {
			return fmt.Errorf("ошибка получения списка записей: %w", err)
		}

		switch listFormat {
		case "json":
			return printRecordsJSON(cmd.OutOrStdout(), records)
		case "table":
			return printRecordsTable(cmd.OutOrStdout(), records)
		default:
			return fmt.Errorf("неизвестный формат вывода: %s", listFormat)
		}
	},
}

func init() {
	listCmd.Flags().StringVarP(&listOrigin, "origin", "o", "", "фильтр по источнику")
	listCmd.Flags().StringVarP(&listDate, "date", "d", "", "фильтр по дате (YYYY-MM-DD)")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "формат вывода (table, json)")
}
