package cmd

import (
	"fmt"
	"io"
	"os"

	"datareceiver/internal/domain/record"

	"github.com/spf13/cobra"
)

var (
	sendID     string
	sendOrigin string
	sendData   string
	sendFile   string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Отправить запись на сервер",
	Long: `Отправляет запись {id, origin, mime_data}. Время записи назначает сервер.

Содержимое берется из --data, либо из файла --file ("-" читает stdin).`,
	Example: `  datareceiver send --id unique123 --origin web-app --data "This is some text data."
  cat payload.txt | datareceiver send --id p1 --origin batch --file -`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readPayload(cmd.InOrStdin())
		if err != nil {
			return err
		}

		rec, err := app.Send(cmd.Context(), record.Submission{
			ID:       sendID,
			Origin:   sendOrigin,
			MimeData: data,
		})
		if err != nil {
			return fmt.Errorf("ошибка отправки записи: %w", err)
		}

		printSent(cmd.OutOrStdout(), rec)
		return nil
	},
}

func readPayload(stdin io.Reader) (string, error) {
	if sendFile == "" {
		return sendData, nil
	}
	if sendData != "" {
		return "", fmt.Errorf("--data и --file нельзя использовать вместе")
	}

	var (
		raw []byte
		err error
	)
	if sendFile == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(sendFile)
	}
	if err != nil {
		return "", fmt.Errorf("ошибка чтения содержимого: %w", err)
	}
	return string(raw), nil
}

func init() {
	sendCmd.Flags().StringVar(&sendID, "id", "", "уникальный идентификатор записи")
	sendCmd.Flags().StringVar(&sendOrigin, "origin", "", "источник записи")
	sendCmd.Flags().StringVar(&sendData, "data", "", "содержимое записи")
	sendCmd.Flags().StringVar(&sendFile, "file", "", "файл с содержимым, - для stdin")
	_ = sendCmd.MarkFlagRequired("id")
	_ = sendCmd.MarkFlagRequired("origin")
}
