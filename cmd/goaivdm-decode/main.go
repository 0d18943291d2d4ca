package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/d21d3q/goaivdm/pkg/goaivdm"
)

var rootCmd = &cobra.Command{
	Use:   "goaivdm-decode [sentence]",
	Short: "Decode AIS AIVDM sentences",
	Long:  "goaivdm-decode decodes NMEA AIVDM sentences into structured AIS data using the goaivdm library.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runInteractive()
		}
		return runDecode(args[0])
	},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.ExecuteContext(mainContext()); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive() error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("goaivdm decode mode. Paste an AIVDM sentence and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runDecode(line); err != nil {
			logrus.WithError(err).Error("failed to decode sentence")
		}
	}
	return scanner.Err()
}

func runDecode(line string) error {
	result, err := goaivdm.Decode(line)
	if err != nil {
		var notImpl goaivdm.NotImplementedError
		if errors.As(err, &notImpl) {
			logrus.WithField("type", notImpl.TypeCode).Warn("message type not implemented")
			return nil
		}
		return err
	}
	fmt.Println(result.String())
	return nil
}
