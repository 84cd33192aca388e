// run-data-managers — наполнение reference-данных на инстансе Galaxy.
//
// Использование:
//
//	run-data-managers [flags] <command>
//
// Команды:
//
//	run    Один полный проход по конфигурации
//	watch  Периодические проходы по cron или интервалу
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/blankenberg/ephemeris/internal/cli"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	// graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := cli.NewRootCmd(version)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
