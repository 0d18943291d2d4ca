package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.bug.st/serial"

	"github.com/d21d3q/goaivdm/internal/options"
	"github.com/d21d3q/goaivdm/pkg/goaivdm"
)

var (
	streamCmd = &cobra.Command{
		Use:   "stream",
		Short: "Decode a live sentence feed",
		Long: "stream reads AIVDM sentences from a TCP feed or a serial AIS receiver " +
			"and prints one decoded result per sentence. Failures are logged and skipped.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sources, err := streamSources()
			if err != nil {
				return err
			}
			return runStream(cmd.Context(), sources)
		},
	}

	tcpAddr     string
	serialPort  string
	baudRate    int
	sourcesFile string
)

func init() {
	streamCmd.Flags().StringVar(&tcpAddr, "tcp", "", "TCP feed address (host:port)")
	streamCmd.Flags().StringVar(&serialPort, "serial", "", "serial receiver device (e.g. /dev/ttyUSB0)")
	streamCmd.Flags().IntVar(&baudRate, "baud", options.DefaultBaudRate, "serial baud rate")
	streamCmd.Flags().StringVar(&sourcesFile, "sources", "", "YAML file listing multiple sources")
	rootCmd.AddCommand(streamCmd)
}

func mainContext() context.Context {
	ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	return ctx
}

func streamSources() ([]options.Source, error) {
	if sourcesFile != "" {
		return options.LoadSources(sourcesFile)
	}
	src := options.Source{Name: "cli", TCP: tcpAddr, Serial: serialPort, Baud: baudRate}
	if err := src.Validate(); err != nil {
		return nil, fmt.Errorf("pass --tcp or --serial (or --sources): %w", err)
	}
	return []options.Source{src}, nil
}

func runStream(ctx context.Context, sources []options.Source) error {
	var wg sync.WaitGroup
	for _, src := range sources {
		wg.Add(1)
		go func(src options.Source) {
			defer wg.Done()
			log := logrus.WithField("source", src.String())
			if err := streamSource(ctx, src); err != nil && ctx.Err() == nil {
				log.WithError(err).Error("stream ended")
			}
		}(src)
	}
	wg.Wait()
	return ctx.Err()
}

func streamSource(ctx context.Context, src options.Source) error {
	reader, err := openSource(src)
	if err != nil {
		return err
	}
	defer reader.Close()

	// Unblock the scanner when the context is cancelled.
	go func() {
		<-ctx.Done()
		reader.Close()
	}()

	log := logrus.WithField("source", src.String())
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] != '!' {
			continue
		}
		result, err := goaivdm.Decode(line)
		if err != nil {
			log.WithError(err).WithField("sentence", line).Debug("dropped sentence")
			continue
		}
		fmt.Println(result.String())
	}
	return scanner.Err()
}

func openSource(src options.Source) (io.ReadCloser, error) {
	if src.TCP != "" {
		conn, err := net.Dial("tcp", src.TCP)
		if err != nil {
			return nil, fmt.Errorf("connect %s: %w", src.TCP, err)
		}
		return conn, nil
	}
	port, err := serial.Open(src.Serial, &serial.Mode{BaudRate: src.Baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.Serial, err)
	}
	return port, nil
}
